// Package sections splits resume text into heading-delimited sections and
// classifies each heading into a fixed section kind.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/types"
)

type pattern struct {
	kind types.SectionKind
	re   *regexp.Regexp
}

// Order matters: the first match wins, so specific kinds come before broad
// ones ("项目经历" must be projects, not experience).
var patterns = []pattern{
	{types.SectionPersonalInfo, regexp.MustCompile(`(?i)(personal\s+(info|information|details)|contact(\s+info(rmation)?)?\b|基本信息|个人信息|联系方式)`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)(\bsummary\b|\bprofile\b|\bobjective\b|about\s+me|个人简介|个人总结|自我评价|个人评价|求职意向|简介)`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)(\bprojects?\b|\bportfolio\b|项目)`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)(\beducation\b|\bacademic\b|教育|学历)`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)(\bskills?\b|\btechnical\s+(expertise|proficienc(y|ies))\b|tech\s+stack|\bcompetenc(y|ies)\b|\bcertifications?\b|技能|专长|证书)`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)(\bexperiences?\b|\bemployment\b|\bwork\b|\bcareer\b|\binternships?\b|工作|实习|经历|履历)`)},
}

// Classify maps a heading to its section kind, or general when nothing matches.
func Classify(heading string) types.SectionKind {
	kind, _ := Recognize(heading)
	return kind
}

// Recognize is Classify that also reports whether a pattern matched.
func Recognize(heading string) (types.SectionKind, bool) {
	heading = strings.TrimSpace(heading)
	for _, p := range patterns {
		if p.re.MatchString(heading) {
			return p.kind, true
		}
	}
	return types.SectionGeneral, false
}

// HeadingLevel returns the markdown heading level of line (0 when the line
// is not a heading) and the heading text.
func HeadingLevel(line string) (int, string) {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, ""
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, ""
	}
	return level, strings.TrimSpace(rest)
}

// IsTopLevel reports whether line opens a new section (a # or ## heading).
func IsTopLevel(line string) bool {
	level, text := HeadingLevel(line)
	return (level == 1 || level == 2) && text != ""
}

// Split segments text on top-level heading lines. Lines before the first
// heading form a general section without a heading. Every input line belongs
// to exactly one section and Content keeps the section's heading line.
func Split(text string) []types.ResumeSection {
	lines := strings.Split(text, "\n")

	var (
		result  []types.ResumeSection
		current *types.ResumeSection
		body    []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(body, "\n")
		result = append(result, *current)
	}

	for _, line := range lines {
		if IsTopLevel(line) {
			flush()
			_, heading := HeadingLevel(line)
			current = &types.ResumeSection{Kind: Classify(heading), Heading: heading}
			body = []string{line}
			continue
		}
		if current == nil {
			current = &types.ResumeSection{Kind: types.SectionGeneral}
			body = nil
		}
		body = append(body, line)
	}
	flush()

	// Drop a preamble made only of blank lines.
	if len(result) > 1 && result[0].Heading == "" && strings.TrimSpace(result[0].Content) == "" {
		result = result[1:]
	}
	return result
}

// HasBody reports whether a section holds anything besides its heading.
func HasBody(s types.ResumeSection) bool {
	for _, line := range strings.Split(s.Content, "\n") {
		if strings.TrimSpace(line) == "" || IsTopLevel(line) {
			continue
		}
		return true
	}
	return false
}
