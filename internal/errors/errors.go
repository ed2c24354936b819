package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrMissingFile indicates no target file was given.
	ErrMissingFile = crdb.New("no file specified")

	// ErrFileNotFound indicates the target file does not exist.
	ErrFileNotFound = crdb.New("file not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrInvalidFlag indicates a flag value is not acceptable.
	ErrInvalidFlag = crdb.New("invalid flag value")
)

// New returns an error with the given message and a stack trace.
func New(msg string) error { return crdb.New(msg) }

// Newf formats an error message and attaches a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil when err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// WithHint attaches a user-facing hint to err.
func WithHint(err error, hint string) error { return crdb.WithHint(err, hint) }

// GetAllHints returns every hint attached anywhere in the chain of err.
func GetAllHints(err error) []string { return crdb.GetAllHints(err) }

// Mark makes err match reference under Is without changing its message.
func Mark(err, reference error) error { return crdb.Mark(err, reference) }

// Is reports whether any error in the chain of err matches target.
func Is(err, target error) bool { return crdb.Is(err, target) }

// As finds the first error in the chain of err that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: propman config path",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err. Errors without an
// ExitError in their chain map to ExitUser, nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}

// Suggestion returns the first suggestion found for err: the Suggestion of
// an ExitError in the chain, or else the first hint attached with WithHint.
func Suggestion(err error) string {
	var exitErr *ExitError
	if As(err, &exitErr) && exitErr.Suggestion != "" {
		return exitErr.Suggestion
	}
	if hints := GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return ""
}
