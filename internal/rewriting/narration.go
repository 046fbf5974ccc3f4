package rewriting

import (
	"strings"

	"github.com/jonathan/resume-agent/internal/sections"
)

// narrationMarkers are phrases models use when they talk about the rewrite
// instead of emitting only the rewritten text. Stored lower-case.
var narrationMarkers = []string{
	"思考过程", "改写说明", "以下是", "改写后的", "好的，",
	"here is", "here's", "i have rewritten", "explanation:",
}

// narration returns the first marker found in text, ignoring case.
func narration(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, m := range narrationMarkers {
		if strings.Contains(lower, m) {
			return m, true
		}
	}
	return "", false
}

// trimPreamble drops leading narration lines ("以下是改写后的内容：") that
// precede the first heading, bullet or content line of a reply.
func trimPreamble(reply string) string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if level, _ := sections.HeadingLevel(trimmed); level > 0 || isBulletLine(trimmed) {
			return strings.Join(lines[i:], "\n")
		}
		if _, ok := narration(trimmed); !ok {
			return strings.Join(lines[i:], "\n")
		}
	}
	return ""
}

func hasNarration(text string) bool {
	_, ok := narration(text)
	return ok
}
