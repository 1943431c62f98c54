package commands

import (
	"errors"
	"fmt"
)

// Error tiers. Callers classify failures with errors.Is.
var (
	// ErrInvalidInput marks failures caused by the command line itself:
	// malformed VALUES, bad flag values, missing required options.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransform marks failures raised while an operation runs.
	ErrTransform = errors.New("transform failed")
)

// Exit codes returned by the leapprep binary.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// tieredError keeps the message of err while also matching a tier sentinel.
type tieredError struct {
	err  error
	tier error
}

func (e *tieredError) Error() string { return e.err.Error() }

func (e *tieredError) Unwrap() []error { return []error{e.err, e.tier} }

// InvalidInput wraps err as an input error without changing its message.
func InvalidInput(err error) error {
	if err == nil || errors.Is(err, ErrInvalidInput) {
		return err
	}
	return &tieredError{err: err, tier: ErrInvalidInput}
}

func invalidInputf(format string, a ...any) error {
	return InvalidInput(fmt.Errorf(format, a...))
}

func transformErrorf(format string, a ...any) error {
	return &tieredError{err: fmt.Errorf(format, a...), tier: ErrTransform}
}

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
