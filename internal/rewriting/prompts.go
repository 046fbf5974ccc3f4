package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-agent/internal/industry"
	"github.com/jonathan/resume-agent/internal/prompts"
	"github.com/jonathan/resume-agent/internal/types"
)

// sharedContext is computed once per run and read by every section prompt.
type sharedContext struct {
	profile    industry.Profile
	targetRole string
	analysis   string
	guidance   string
}

type sectionPrompt struct {
	System string
	User   string
}

// promptParts selects which shared context a section prompt embeds.
type promptParts struct {
	instructionKey string
	metrics        bool
	verbs          bool
	analysis       bool
}

// buildSectionPrompt dispatches on the section kind.
func buildSectionPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	switch sec.Kind {
	case types.SectionExperience:
		return buildExperiencePrompt(sec, shared)
	case types.SectionProjects:
		return buildProjectsPrompt(sec, shared)
	case types.SectionSummary:
		return buildSummaryPrompt(sec, shared)
	case types.SectionSkills:
		return buildSkillsPrompt(sec, shared)
	case types.SectionEducation:
		return buildEducationPrompt(sec, shared)
	case types.SectionPersonalInfo:
		return buildPersonalInfoPrompt(sec, shared)
	case types.SectionGeneral:
		return buildGeneralPrompt(sec, shared)
	default:
		return buildGeneralPrompt(sec, shared)
	}
}

func buildExperiencePrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-experience", metrics: true, verbs: true, analysis: true})
}

func buildProjectsPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-projects", metrics: true, verbs: true, analysis: true})
}

func buildSummaryPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-summary", metrics: true, analysis: true})
}

func buildSkillsPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-skills", analysis: true})
}

func buildEducationPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-education"})
}

func buildPersonalInfoPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-personal_info"})
}

func buildGeneralPrompt(sec types.ResumeSection, shared sharedContext) (sectionPrompt, error) {
	return composePrompt(sec, shared, promptParts{instructionKey: "instruction-general", verbs: true, analysis: true})
}

func composePrompt(sec types.ResumeSection, shared sharedContext, parts promptParts) (sectionPrompt, error) {
	instruction, err := prompts.Get("rewriting.json", parts.instructionKey)
	if err != nil {
		return sectionPrompt{}, err
	}

	system, err := prompts.Render("rewriting.json", "section-system", map[string]string{
		"Persona":     shared.profile.Persona,
		"Instruction": instruction,
		"Examples":    formatExamples(shared.profile.Examples),
	})
	if err != nil {
		return sectionPrompt{}, err
	}

	none := "无"
	data := map[string]string{
		"Guidance":   shared.guidance,
		"TargetRole": orUnspecified(shared.targetRole),
		"Analysis":   none,
		"Metrics":    none,
		"Verbs":      none,
		"Content":    sec.Content,
	}
	if parts.analysis && strings.TrimSpace(shared.analysis) != "" {
		data["Analysis"] = shared.analysis
	}
	if parts.metrics && len(shared.profile.Metrics) > 0 {
		data["Metrics"] = strings.Join(shared.profile.Metrics, "、")
	}
	if parts.verbs && len(shared.profile.Verbs) > 0 {
		data["Verbs"] = strings.Join(shared.profile.Verbs, "、")
	}

	user, err := prompts.Render("rewriting.json", "section-user", data)
	if err != nil {
		return sectionPrompt{}, err
	}
	return sectionPrompt{System: system, User: user}, nil
}

func formatExamples(examples []industry.Example) string {
	if len(examples) == 0 {
		return "无"
	}
	blocks := make([]string, 0, len(examples))
	for i, ex := range examples {
		blocks = append(blocks, fmt.Sprintf("示例%d\n改写前：%s\n改写后：%s", i+1, ex.Before, ex.After))
	}
	return strings.Join(blocks, "\n\n")
}
