package clierr

import (
	"errors"
	"fmt"
)

// Exit codes for the failure classes gitstat distinguishes. Anything not
// wrapped explicitly exits with CodeGeneric.
const (
	CodeGeneric             = 1
	CodeConflictingOptions  = 2
	CodeLogUnavailable      = 3
	CodeInsufficientHistory = 4
	CodeInvalidCommitData   = 5
	CodeOutputWriteFailure  = 6
)

// ExitCoder is any error carrying an explicit process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError attaches an exit code to an error. It supports wrapping via
// Unwrap so errors.Is/As keep working on the cause.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message and no cause.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError around an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to
// CodeGeneric. Keeps main() dumb.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeGeneric
}

func normalize(code int) int {
	if code <= 0 {
		return CodeGeneric
	}
	return code
}
