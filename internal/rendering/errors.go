package rendering

import (
	"errors"
	"strings"
)

// ErrUnsupportedEncoding is wrapped by Render for an unknown encoding.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// RenderError reports a failure to produce one encoding of a document.
// Template is set when an embedded template failed to execute.
type RenderError struct {
	Encoding Encoding
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString("render ")
	b.WriteString(string(e.Encoding))
	if e.Template != "" {
		b.WriteString(" (" + e.Template + ")")
	}
	b.WriteString(": " + e.Message)
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func templateError(enc Encoding, name string, err error) error {
	return &RenderError{Encoding: enc, Template: name, Message: "failed to execute template", Cause: err}
}
