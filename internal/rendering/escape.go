package rendering

import "strings"

// latexSpecials maps each LaTeX special character to its escaped form.
// Backslash is included so user text can never open a command.
var latexSpecials = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes the LaTeX special characters \ { } $ & % # ^ _ ~ in text.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexSpecials.Replace(text)
}
