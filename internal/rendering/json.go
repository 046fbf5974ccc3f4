package rendering

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/resume-agent/internal/types"
)

// RenderJSON encodes doc as the versioned JSON contract with the given
// template recorded in templateId. Hidden entries stay in the encoding with
// "visible": false.
func RenderJSON(doc *types.ResumeDocument, templateID types.TemplateID) ([]byte, error) {
	id, _ := types.ParseTemplateID(string(templateID))

	out := *doc
	out.TemplateID = id
	if out.Education == nil {
		out.Education = []types.Education{}
	}
	if out.Experience == nil {
		out.Experience = []types.Experience{}
	}
	if out.Projects == nil {
		out.Projects = []types.Project{}
	}
	if out.MenuSections == nil {
		out.MenuSections = types.DefaultMenuSections()
	}
	if out.CustomData == nil {
		out.CustomData = map[string]any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, &RenderError{Encoding: EncodingJSON, Message: "failed to encode document", Cause: err}
	}
	return buf.Bytes(), nil
}
