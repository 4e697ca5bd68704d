// Package errors provides error handling conventions for the ocmigrate CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
//
// # Exit Codes
//
//   - ExitSuccess (0): Migration completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitNoProject (2): The project-root marker file is missing
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *ocerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
