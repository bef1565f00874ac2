package entities

import (
	"errors"
	"fmt"
)

// ErrUsage marks a failure caused by invalid command-line input.
// The usage text has already been printed when it is returned.
var ErrUsage = errors.New("usage error")

// ExitError carries the process exit status a failure should produce.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with the given exit status.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit status: 0 for nil, the carried code
// for an ExitError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
