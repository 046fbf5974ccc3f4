package ingestion

import (
	"regexp"
	"strings"
)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Normalize converts CRLF and lone CR line endings to LF and trims
// surrounding whitespace. Line content is left untouched.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimPrefix(content, "\ufeff")
	return strings.TrimSpace(content)
}

// CleanExtracted tidies text pulled out of a binary document: trailing
// whitespace is removed from every line and runs of blank lines collapse
// to one. Headings, bullets and indentation are preserved.
func CleanExtracted(content string) string {
	content = Normalize(content)
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\u00a0")
	}
	return excessBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}
