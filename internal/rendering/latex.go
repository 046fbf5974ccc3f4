package rendering

import (
	"regexp"
	"strings"
	"text/template"

	"github.com/jonathan/resume-agent/internal/sections"
)

// DefaultCandidateName is used in the LaTeX title block when no name is known.
const DefaultCandidateName = "候选人"

var (
	latexTemplate = template.Must(template.New("resume.tex.tmpl").ParseFS(templateFS, "templates/resume.tex.tmpl"))

	latexBold = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// latexData is passed to the LaTeX template. Both fields are already escaped.
type latexData struct {
	Name string
	Body string
}

// MarkdownToLaTeX translates markdown into a complete LaTeX source using the
// fixed article preamble. Headings become unnumbered sections, "-" lines
// become itemize bullets and every other non-blank line becomes a paragraph
// ending in an explicit line break. A leading "# Name" heading that repeats
// the title block is dropped.
func MarkdownToLaTeX(markdown, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCandidateName
	}

	var result strings.Builder
	err := latexTemplate.Execute(&result, latexData{
		Name: EscapeLaTeX(name),
		Body: latexBody(markdown, name),
	})
	if err != nil {
		return "", templateError(EncodingLaTeX, "resume.tex.tmpl", err)
	}
	return result.String(), nil
}

func latexBody(markdown, name string) string {
	var (
		out    []string
		inList bool
		seen   bool
	)
	closeList := func() {
		if inList {
			out = append(out, `\end{itemize}`)
			inList = false
		}
	}

	for _, raw := range strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			closeList()
			continue
		}

		if level, title := sections.HeadingLevel(line); level > 0 {
			closeList()
			first := !seen
			seen = true
			if first && level == 1 && title == name {
				continue
			}
			out = append(out, `\section*{`+latexInline(title)+`}`)
			continue
		}
		seen = true

		if item, ok := latexItem(line); ok {
			if !inList {
				out = append(out, `\begin{itemize}`)
				inList = true
			}
			out = append(out, `\item `+latexInline(item))
			continue
		}

		closeList()
		out = append(out, latexInline(line)+`\\`)
	}
	closeList()

	return strings.Join(out, "\n")
}

// latexItem reports whether line is a bullet and returns its text.
func latexItem(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "* "):
		return strings.TrimSpace(line[1:]), true
	case strings.HasPrefix(line, "•"):
		return strings.TrimSpace(strings.TrimPrefix(line, "•")), true
	}
	return "", false
}

func latexInline(text string) string {
	return latexBold.ReplaceAllString(EscapeLaTeX(text), `\textbf{$1}`)
}
