package output

import "fmt"

// UnsupportedFormatError is returned for an output format or PDF engine
// outside the supported set.
type UnsupportedFormatError struct {
	Kind  string
	Value string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Value)
}

// MissingToolError reports that an external program needed for an
// explicitly requested encoding is not installed.
type MissingToolError struct {
	Tool    string
	Message string
	Cause   error
}

func (e *MissingToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("missing tool %s: %s: %v", e.Tool, e.Message, e.Cause)
	}
	return fmt.Sprintf("missing tool %s: %s", e.Tool, e.Message)
}

func (e *MissingToolError) Unwrap() error {
	return e.Cause
}

// RenderTargetError reports that a PDF renderer ran but produced nothing usable.
type RenderTargetError struct {
	Target    string
	Message   string
	LogOutput string
	Cause     error
}

func (e *RenderTargetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render target %s failed: %s: %v", e.Target, e.Message, e.Cause)
	}
	return fmt.Sprintf("render target %s failed: %s", e.Target, e.Message)
}

func (e *RenderTargetError) Unwrap() error {
	return e.Cause
}
