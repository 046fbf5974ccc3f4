// Package parsing converts rewritten resume markdown back into the
// structured ResumeDocument.
package parsing

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/document"
	"github.com/jonathan/resume-agent/internal/sections"
	"github.com/jonathan/resume-agent/internal/types"
)

var boldLine = regexp.MustCompile(`^\*\*([^*].*?)\*\*[:：]?$`)

// entry is the entry being accumulated under the current section.
type entry struct {
	kind        types.SectionKind
	name        string
	fields      []string
	details     []string
	awaitFields bool
}

type parser struct {
	b *document.Builder

	name    string
	title   string
	contact contact

	kind        types.SectionKind
	seenSection bool
	current     *entry
	skills      []string
}

// ParseMarkdown parses text into a new document. candidateName is used when
// the text carries no leading "# Name" heading.
func ParseMarkdown(text, candidateName string, templateID types.TemplateID, logger *slog.Logger, opts ...document.Option) *types.ResumeDocument {
	b := document.New(templateID, logger, opts...)
	return Populate(b, text, candidateName).Build()
}

// Populate parses text into b and returns b.
func Populate(b *document.Builder, text, candidateName string) *document.Builder {
	p := &parser{b: b, kind: types.SectionGeneral}
	for _, line := range strings.Split(text, "\n") {
		p.line(line)
	}
	p.saveEntry()

	name := p.name
	if name == "" {
		name = strings.TrimSpace(candidateName)
	}
	b.SetBasicInfo(name, p.title, p.contact.Email, p.contact.Phone, p.contact.Location)
	if len(p.skills) > 0 {
		b.SetSkills(strings.Join(p.skills, "\n"))
	}
	return b
}

func (p *parser) line(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	if level, text := sections.HeadingLevel(trimmed); level > 0 {
		p.heading(level, text)
		return
	}

	if m := boldLine.FindStringSubmatch(trimmed); m != nil && isEntryKind(p.kind) {
		p.saveEntry()
		p.openEntry(m[1])
		return
	}

	plain := stripBullet(trimmed)

	// Two-line entry form: the line right after a bare title supplies the fields.
	if p.current != nil && p.current.awaitFields {
		p.current.awaitFields = false
		if hasPipe(plain) {
			p.current.fields = splitTokens(plain)
			return
		}
	}

	if (!p.seenSection || p.kind == types.SectionPersonalInfo) && isContactLine(plain) {
		parseContactLine(plain, &p.contact)
		return
	}

	switch {
	case p.kind == types.SectionSkills:
		p.skills = append(p.skills, NormalizeSkillLine(trimmed))
	case isEntryKind(p.kind) && plain == trimmed && hasPipe(plain):
		// An entry written without ### markup, e.g. "**ACME** | Engineer | 2020".
		p.saveEntry()
		p.openEntry(plain)
	case p.current != nil:
		p.current.details = append(p.current.details, plain)
	}
}

func (p *parser) heading(level int, text string) {
	switch {
	case level == 1:
		p.saveEntry()
		if kind, ok := sections.Recognize(text); ok {
			p.openSection(kind)
			return
		}
		switch {
		case !p.seenSection && p.name == "":
			p.name = text
		case p.seenSection:
			p.openSection(types.SectionGeneral)
		case p.title == "":
			p.title = text
		}

	case level == 2:
		p.saveEntry()
		if kind, ok := sections.Recognize(text); ok {
			p.openSection(kind)
			return
		}
		if !p.seenSection {
			if p.title == "" {
				p.title = text
			}
			return
		}
		p.openSection(types.SectionGeneral)

	default:
		p.saveEntry()
		switch {
		case isEntryKind(p.kind):
			p.openEntry(text)
		case p.kind == types.SectionSkills:
			p.skills = append(p.skills, "**"+text+"**")
		}
	}
}

func (p *parser) openSection(kind types.SectionKind) {
	p.kind = kind
	p.seenSection = true
}

func (p *parser) openEntry(text string) {
	var tokens []string
	for _, tok := range splitTokens(text) {
		if tok = strings.TrimSpace(strings.Trim(tok, "*")); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return
	}
	p.current = &entry{
		kind:        p.kind,
		name:        tokens[0],
		fields:      tokens[1:],
		awaitFields: len(tokens) == 1,
	}
}

// saveEntry appends the pending entry to the builder.
func (p *parser) saveEntry() {
	e := p.current
	p.current = nil
	if e == nil {
		return
	}

	f := InferFields(e.kind, e.fields)
	details := bulletLines(e.details)

	switch e.kind {
	case types.SectionEducation:
		start, end := SplitDateRange(f.Date)
		p.b.AddEducation(document.EducationEntry{
			School:      e.name,
			Major:       f.Positional,
			Degree:      f.Degree,
			StartDate:   start,
			EndDate:     end,
			GPA:         f.GPA,
			Description: details,
		})
	case types.SectionExperience:
		p.b.AddExperience(document.ExperienceEntry{
			Company:  e.name,
			Position: f.Positional,
			Date:     f.Date,
			Details:  details,
		})
	case types.SectionProjects:
		p.b.AddProject(document.ProjectEntry{
			Name:        e.name,
			Role:        f.Positional,
			Date:        f.Date,
			Description: details,
			Link:        f.Link,
		})
	}
}

func isEntryKind(kind types.SectionKind) bool {
	switch kind {
	case types.SectionEducation, types.SectionExperience, types.SectionProjects:
		return true
	}
	return false
}

// stripBullet removes a leading "- ", "* " or "• " marker. "**bold**" is not a bullet.
func stripBullet(line string) string {
	switch {
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "• "):
		_, rest, _ := strings.Cut(line, " ")
		return strings.TrimSpace(rest)
	case strings.HasPrefix(line, "* "):
		return strings.TrimSpace(line[2:])
	}
	return line
}

func bulletLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "- " + l
	}
	return strings.Join(out, "\n")
}
