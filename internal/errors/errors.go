// Package errors provides sentinel errors for the forge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidIdentifier indicates a malformed application or module name.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNameConflict indicates the requested module name is already taken.
	ErrNameConflict = errors.New("name conflict")

	// ErrVersionParse indicates the host runtime version string is unparseable.
	ErrVersionParse = errors.New("version parse error")

	// ErrUserAborted indicates the user declined the confirmation prompt.
	ErrUserAborted = errors.New("aborted by user")

	// ErrPathConflict indicates a non-directory blocks a required directory.
	ErrPathConflict = errors.New("path conflict")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewIdentifierError creates an invalid identifier error with details.
func NewIdentifierError(message, hint string) error {
	return &DetailError{
		Type:    "invalid identifier",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidIdentifier,
	}
}

// NewNameConflictError creates a name conflict error with details.
func NewNameConflictError(message, hint string) error {
	return &DetailError{
		Type:    "name conflict",
		Message: message,
		Hint:    hint,
		Cause:   ErrNameConflict,
	}
}

// NewPathConflictError creates a path conflict error with details.
func NewPathConflictError(message, location string) error {
	return &DetailError{
		Type:     "path conflict",
		Message:  message,
		Location: location,
		Cause:    ErrPathConflict,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
