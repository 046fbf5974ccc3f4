// Package planner decides which pipeline stages still have to run.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/prompts"
	"github.com/jonathan/resume-agent/internal/types"
)

// Stage is a pipeline phase.
type Stage string

// Stages in canonical execution order.
const (
	StageExtractInput   Stage = "extract_input"
	StageRewriteContent Stage = "rewrite_content"
	StageGenerateOutput Stage = "generate_output"
)

// AllStages returns every stage in canonical order.
func AllStages() []Stage {
	return []Stage{StageExtractInput, StageRewriteContent, StageGenerateOutput}
}

// MaxPreviewChars bounds the document preview sent to the model.
const MaxPreviewChars = 2000

// Status is the two-state run status.
type Status string

// Run statuses.
const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Flags records which stages have finished. Flags only ever go from false to true.
type Flags struct {
	HasMarkdown         bool `json:"hasMarkdown"`
	HasPolishedMarkdown bool `json:"hasPolishedMarkdown"`
	HasOutput           bool `json:"hasOutput"`
}

func (f Flags) done(s Stage) bool {
	switch s {
	case StageExtractInput:
		return f.HasMarkdown
	case StageRewriteContent:
		return f.HasPolishedMarkdown
	case StageGenerateOutput:
		return f.HasOutput
	}
	return false
}

// State is the per-run planner state.
type State struct {
	Flags          Flags            `json:"flags"`
	Stages         []Stage          `json:"stages"`
	TemplateID     types.TemplateID `json:"templateId"`
	TemplateReason string           `json:"templateReason"`
	FromFallback   bool             `json:"fromFallback"`
}

// planResponse is the JSON object requested from the model.
type planResponse struct {
	StageList      []string `json:"stageList"`
	TemplateChoice string   `json:"templateChoice"`
	TemplateReason string   `json:"templateReason"`
	IsComplete     bool     `json:"isComplete"`
}

// Planner owns the progress state of one run. It is not safe for concurrent use.
type Planner struct {
	client llm.Client
	logger *slog.Logger
	state  State
}

// New creates a planner with all flags false. A nil client means every
// decision uses FallbackPlan.
func New(client llm.Client, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		client: client,
		logger: logger,
		state:  State{TemplateID: types.DefaultTemplate},
	}
}

// FallbackPlan returns exactly the stages whose flag is still false, in
// canonical order.
func FallbackPlan(flags Flags) []Stage {
	var out []Stage
	for _, s := range AllStages() {
		if !flags.done(s) {
			out = append(out, s)
		}
	}
	return out
}

// MarkComplete records that a stage finished. Flags are never reset.
func (p *Planner) MarkComplete(s Stage) {
	switch s {
	case StageExtractInput:
		p.state.Flags.HasMarkdown = true
	case StageRewriteContent:
		p.state.Flags.HasPolishedMarkdown = true
	case StageGenerateOutput:
		p.state.Flags.HasOutput = true
	}
}

// Status reports complete iff output has been generated.
func (p *Planner) Status() Status {
	if p.state.Flags.HasOutput {
		return StatusComplete
	}
	return StatusInProgress
}

// State returns a snapshot of the planner state.
func (p *Planner) State() State {
	out := p.state
	out.Stages = slices.Clone(p.state.Stages)
	return out
}

// Decide produces the ordered stage list for the current flags. The LLM
// may choose the template; its stage list is always repaired so that it is
// sufficient. Any LLM failure falls back to FallbackPlan.
func (p *Planner) Decide(ctx context.Context, text, targetRole, jobDescription string) []Stage {
	stages, ok := p.decideWithLLM(ctx, text, targetRole, jobDescription)
	if !ok {
		stages = FallbackPlan(p.state.Flags)
		p.state.FromFallback = true
	} else {
		p.state.FromFallback = false
	}
	p.state.Stages = stages
	return slices.Clone(stages)
}

func (p *Planner) decideWithLLM(ctx context.Context, text, targetRole, jobDescription string) ([]Stage, bool) {
	if p.client == nil {
		return nil, false
	}

	systemPrompt, userPrompt, err := p.buildPrompts(text, targetRole, jobDescription)
	if err != nil {
		p.logger.Warn("planner prompt unavailable, using fallback plan", "error", err)
		return nil, false
	}

	reply, err := p.client.Chat(ctx, systemPrompt, userPrompt)
	if err != nil {
		p.logger.Warn("planner call failed, using fallback plan", "error", err)
		return nil, false
	}

	var resp planResponse
	if err := llm.DecodeJSONObject(reply, &resp); err != nil {
		p.logger.Warn("planner reply unparseable, using fallback plan", "error", err)
		return nil, false
	}
	if resp.StageList == nil {
		p.logger.Warn("planner reply missing stageList, using fallback plan")
		return nil, false
	}

	p.applyTemplate(resp.TemplateChoice, resp.TemplateReason)
	return p.repair(resp.StageList), true
}

// repair makes an LLM stage list sufficient and well-formed.
func (p *Planner) repair(names []string) []Stage {
	flags := p.state.Flags
	seen := make(map[Stage]bool)
	for _, name := range names {
		s := Stage(strings.TrimSpace(name))
		if !slices.Contains(AllStages(), s) {
			p.logger.Debug("dropping unknown stage", "stage", name)
			continue
		}
		if flags.done(s) {
			continue
		}
		seen[s] = true
	}
	if !flags.HasPolishedMarkdown {
		seen[StageRewriteContent] = true
	}
	if !flags.HasOutput {
		seen[StageGenerateOutput] = true
	}

	var out []Stage
	for _, s := range AllStages() {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func (p *Planner) applyTemplate(choice, reason string) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return
	}
	id, ok := types.ParseTemplateID(choice)
	if !ok {
		p.logger.Warn("planner chose unknown template, using default", "template", choice)
		p.state.TemplateID = types.DefaultTemplate
		p.state.TemplateReason = ""
		return
	}
	p.state.TemplateID = id
	p.state.TemplateReason = strings.TrimSpace(reason)
}

func (p *Planner) buildPrompts(text, targetRole, jobDescription string) (string, string, error) {
	system, err := prompts.Get("planner.json", "plan-system")
	if err != nil {
		return "", "", err
	}
	flags := p.state.Flags
	user, err := prompts.Render("planner.json", "plan-user", map[string]string{
		"HasMarkdown":         fmt.Sprint(flags.HasMarkdown),
		"HasPolishedMarkdown": fmt.Sprint(flags.HasPolishedMarkdown),
		"HasOutput":           fmt.Sprint(flags.HasOutput),
		"TargetRole":          orUnspecified(targetRole),
		"JobDescription":      orUnspecified(llm.Truncate(jobDescription, MaxPreviewChars)),
		"Content":             llm.Truncate(text, MaxPreviewChars),
	})
	if err != nil {
		return "", "", err
	}
	return llm.BuildSystemPrompt(system, llm.StagePlanSchema()), user, nil
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "未指定"
	}
	return s
}
