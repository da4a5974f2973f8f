package app

import "fmt"

// Exit codes returned through ExitError.
const (
	ExitFailure = 1 // unreadable input, bad tokens, failed solve or output
	ExitUsage   = 2 // bad flags or configuration
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExitError) Unwrap() error { return e.Err }

// Usage wraps err as a configuration or flag problem.
func Usage(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Err: err}
}

func failure(msg string, err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: msg, Err: err}
}
