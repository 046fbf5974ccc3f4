package llm

import "fmt"

// CallError represents a failed chat call: transport error, timeout,
// non-success status, or an empty/malformed reply.
type CallError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *CallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm call error (%s): %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("llm call error (%s): %s", e.Provider, e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Cause
}
