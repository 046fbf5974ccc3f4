package ingestion

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when normalization leaves no text.
var ErrEmptyInput = errors.New("input is empty after normalization")

// UnsupportedFormatError is returned for a file extension that cannot be read.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported input format %q (%s): expected .txt, .md, .pdf, .docx or .doc", e.Extension, e.Path)
}

// ExtractionError reports a document that could be opened but not read.
type ExtractionError struct {
	Path    string
	Kind    SourceKind
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text from %s: %s: %v", e.Kind, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text from %s: %s", e.Kind, e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
