package errors

import "errors"

// Exit codes for the forge CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidIdentifier indicates a malformed app or module name.
	ExitInvalidIdentifier = 2

	// ExitNameConflict indicates the module name is already taken.
	ExitNameConflict = 3

	// ExitVersionParse indicates the runtime version string is unparseable.
	ExitVersionParse = 4

	// ExitUserAborted indicates the user declined the confirmation prompt.
	ExitUserAborted = 5

	// ExitPathConflict indicates a non-directory blocks a required directory.
	ExitPathConflict = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return ExitInvalidIdentifier
	case errors.Is(err, ErrNameConflict):
		return ExitNameConflict
	case errors.Is(err, ErrVersionParse):
		return ExitVersionParse
	case errors.Is(err, ErrUserAborted):
		return ExitUserAborted
	case errors.Is(err, ErrPathConflict):
		return ExitPathConflict
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidIdentifier:
		return "Invalid Identifier"
	case ExitNameConflict:
		return "Name Conflict"
	case ExitVersionParse:
		return "Version Parse Error"
	case ExitUserAborted:
		return "User Aborted"
	case ExitPathConflict:
		return "Path Conflict"
	default:
		return "Unknown"
	}
}
