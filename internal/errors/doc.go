// Package errors provides error handling conventions for the propman CLI.
//
// It re-exports the constructors and inspection helpers of
// [github.com/cockroachdb/errors] so call sites only import one errors
// package, and adds an ExitError type carrying a process exit code and an
// optional suggestion.
//
// # Sentinel Errors
//
// Sentinel errors can be checked with [Is]:
//
//	if errors.Is(err, errors.ErrFileNotFound) {
//	    // the note does not exist
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (bad flags, missing file, bad config)
//   - ExitSystem (2): System-related error (I/O, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports [Unwrap], [Is] and [As]:
//
//	err := errors.NewUserError(errors.ErrMissingFile, "Pass the note with --file")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
