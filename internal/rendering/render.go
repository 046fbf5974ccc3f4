// Package rendering turns a ResumeDocument into its output encodings: the
// versioned JSON contract, a Word document and self-contained print HTML.
// It also translates plain markdown into LaTeX for the compiler fallback.
//
// Renderers only read the document they are given.
package rendering

import (
	"log/slog"

	"github.com/jonathan/resume-agent/internal/types"
)

// Encoding selects the output encoding of Render.
type Encoding string

// Supported encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingWord Encoding = "docx"
	EncodingHTML Encoding = "html"

	// EncodingLaTeX is produced from markdown by MarkdownToLaTeX, not by
	// Render.
	EncodingLaTeX Encoding = "tex"
)

// pxToPt is the fixed pixel-to-point multiplier shared with the JSON
// consumers' word export. It is not a physical conversion.
const pxToPt = 0.58

// PxToPt converts a pixel-denominated style setting to points.
func PxToPt(px float64) float64 {
	return px * pxToPt
}

// ResolveTemplate returns id when it names a template and classic otherwise,
// logging a warning on coercion.
func ResolveTemplate(id types.TemplateID, logger *slog.Logger) types.TemplateID {
	resolved, ok := types.ParseTemplateID(string(id))
	if !ok {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("unknown template, rendering with default",
			"component", "rendering",
			"template", string(id),
			"default", string(resolved))
	}
	return resolved
}

// Render renders doc with the given template in the requested encoding.
// Unknown templates render exactly like classic.
func Render(doc *types.ResumeDocument, templateID types.TemplateID, enc Encoding) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Encoding: enc, Message: "document is nil"}
	}
	id := ResolveTemplate(templateID, nil)

	switch enc {
	case EncodingJSON:
		return RenderJSON(doc, id)
	case EncodingWord:
		return RenderWord(doc, id)
	case EncodingHTML:
		return RenderHTML(doc, id)
	default:
		return nil, &RenderError{Encoding: enc, Message: "cannot render", Cause: ErrUnsupportedEncoding}
	}
}
