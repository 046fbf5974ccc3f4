package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToLaTeX_Preamble(t *testing.T) {
	tex, err := MarkdownToLaTeX("hello", "Jane Doe")
	require.NoError(t, err)

	assert.Contains(t, tex, `\documentclass[11pt]{article}`)
	assert.Contains(t, tex, `\usepackage[margin=1in]{geometry}`)
	assert.Contains(t, tex, `\setlist[itemize]{noitemsep, topsep=0pt}`)
	assert.Contains(t, tex, `{\LARGE Jane Doe}\\`)
	assert.Contains(t, tex, `\end{document}`)
}

func TestMarkdownToLaTeX_Body(t *testing.T) {
	md := "# Jane\n## Experience\n- a & b\n- c\nplain 100%\n\n## C# 技能\n* Go_lang"
	tex, err := MarkdownToLaTeX(md, "Jane")
	require.NoError(t, err)

	assert.NotContains(t, tex, `\section*{Jane}`)
	assert.Contains(t, tex, `\section*{Experience}`)
	assert.Contains(t, tex, "\\begin{itemize}\n\\item a \\& b\n\\item c\n\\end{itemize}\nplain 100\\%\\\\")
	assert.Contains(t, tex, `\section*{C\# 技能}`)
	assert.Contains(t, tex, "\\begin{itemize}\n\\item Go\\_lang\n\\end{itemize}")
}

func TestMarkdownToLaTeX_DefaultName(t *testing.T) {
	tex, err := MarkdownToLaTeX("", "  ")
	require.NoError(t, err)
	assert.Contains(t, tex, `{\LARGE 候选人}`)
}

func TestMarkdownToLaTeX_EscapesName(t *testing.T) {
	tex, err := MarkdownToLaTeX("", "R&D_Lead")
	require.NoError(t, err)
	assert.Contains(t, tex, `{\LARGE R\&D\_Lead}`)
}

func TestMarkdownToLaTeX_Bold(t *testing.T) {
	tex, err := MarkdownToLaTeX("**ACME** | 2020", "x")
	require.NoError(t, err)
	assert.Contains(t, tex, `\textbf{ACME} | 2020\\`)
}

func TestMarkdownToLaTeX_ListClosedAtEnd(t *testing.T) {
	tex, err := MarkdownToLaTeX("- only", "x")
	require.NoError(t, err)
	assert.Contains(t, tex, "\\item only\n\\end{itemize}")
}
