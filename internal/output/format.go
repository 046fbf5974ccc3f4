package output

import "strings"

// Format is the requested artifact type.
type Format string

// Supported output formats.
const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatJSON Format = "json"
)

// ParseFormat normalises s into a Format. "word" is accepted as docx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "docx", "word":
		return FormatDocx, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Kind: "output format", Value: s}
	}
}

// Engine selects how a PDF is produced.
type Engine string

// PDF engines. Auto tries chrome, then LaTeX, then degrades to Word.
const (
	EngineAuto   Engine = "auto"
	EngineChrome Engine = "chrome"
	EngineLaTeX  Engine = "latex"
)

// ParseEngine normalises s into an Engine. Empty means auto.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EngineAuto, nil
	case "chrome", "chromium":
		return EngineChrome, nil
	case "latex", "tex":
		return EngineLaTeX, nil
	default:
		return "", &UnsupportedFormatError{Kind: "pdf engine", Value: s}
	}
}
