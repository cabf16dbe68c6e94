package sdk

import (
	"errors"
	"fmt"

	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// ProtocolError is returned when the request read from the host is malformed.
type ProtocolError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid request: %s: %v", e.Reason, e.Err)
	}

	return "invalid request: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// HandlerError wraps a failure raised by a hook handler.
type HandlerError struct {
	Hook types.Hook
	Err  error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %s failed: %v", e.Hook, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for the outcome of Run.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return 1
}

// errorMessage returns the text sent to the host in an error response.
// Handler failures carry the handler's own message. The result is never empty.
func errorMessage(err error) string {
	var herr *HandlerError
	if errors.As(err, &herr) {
		if herr.Err != nil && herr.Err.Error() != "" {
			return herr.Err.Error()
		}

		return fmt.Sprintf("handler for %s failed", herr.Hook)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return "unknown error"
}
