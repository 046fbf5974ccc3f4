package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/sections"
	"github.com/jonathan/resume-agent/internal/types"
)

var excessBlankLines = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

// Bulletify is the local rewrite used when no model reply is available:
// every line that is neither a heading nor already a bullet becomes a
// "- " bullet. Blank lines are kept.
func Bulletify(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			out = append(out, "")
		case isHeadingLine(trimmed), isBulletLine(trimmed):
			out = append(out, line)
		default:
			out = append(out, "- "+trimmed)
		}
	}
	return strings.Join(out, "\n")
}

// Merge reassembles sections in order, preferring enhanced content, with a
// blank line between sections and no run of more than one blank line.
func Merge(secs []types.ResumeSection) string {
	parts := make([]string, 0, len(secs))
	for _, s := range secs {
		text := strings.Trim(s.Text(), "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}
	return CollapseBlankLines(strings.Join(parts, "\n\n"))
}

// CollapseBlankLines turns every run of two or more blank lines into one.
func CollapseBlankLines(text string) string {
	return strings.TrimSpace(excessBlankLines.ReplaceAllString(text, "\n\n"))
}

func isHeadingLine(trimmed string) bool {
	level, _ := sections.HeadingLevel(trimmed)
	return level > 0
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "•")
}
