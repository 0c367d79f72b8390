package cli

import (
	"errors"
	"fmt"

	"github.com/streamline-dev/streamline/internal/dispatch"
	"github.com/streamline-dev/streamline/internal/project"
)

// Process exit codes.
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitValidationError     = 2
	ExitPreconditionMissing = 3
	ExitNoTests             = 4
	ExitExternalFailure     = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
	// Reported is set when the user has already been told about Err.
	Reported bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode determines the process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, project.ErrValidation) {
		return ExitValidationError
	}
	return ExitGeneralError
}

// exitCodeFor maps a dispatch status onto an exit code.
func exitCodeFor(s dispatch.Status) int {
	switch s {
	case dispatch.StatusSuccess:
		return ExitSuccess
	case dispatch.StatusInvalid:
		return ExitValidationError
	case dispatch.StatusPreconditionMissing:
		return ExitPreconditionMissing
	case dispatch.StatusNoTests:
		return ExitNoTests
	case dispatch.StatusExternalFailure:
		return ExitExternalFailure
	default:
		return ExitGeneralError
	}
}

// resultError turns a failed result into an already-reported ExitError.
func resultError(res dispatch.Result) error {
	if res.OK() {
		return nil
	}
	err := res.Err
	if err == nil {
		err = fmt.Errorf("%s", res)
	}
	return &ExitError{Err: err, Code: exitCodeFor(res.Status), Reported: true}
}
