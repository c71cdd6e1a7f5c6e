package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailError_Format(t *testing.T) {
	err := &DetailError{
		Type:     "path conflict",
		Message:  "shop exists and is not a directory",
		Location: "shop",
		Hint:     "Remove the file or choose another path.",
		Cause:    ErrPathConflict,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: path conflict")
	assert.Contains(t, msg, "Location: shop")
	assert.Contains(t, msg, "shop exists and is not a directory")
	assert.Contains(t, msg, "Hint: Remove the file")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewIdentifierError("bad name", "")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	err = NewNameConflictError("taken", "")
	assert.ErrorIs(t, err, ErrNameConflict)

	err = NewPathConflictError("blocked", "lib")
	assert.ErrorIs(t, err, ErrPathConflict)
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrUserAborted, "generation cancelled")
	assert.ErrorIs(t, err, ErrUserAborted)
	assert.Contains(t, err.Error(), "generation cancelled")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid identifier", NewIdentifierError("bad", ""), ExitInvalidIdentifier},
		{"name conflict", NewNameConflictError("taken", ""), ExitNameConflict},
		{"version parse", Wrap(ErrVersionParse, "bad version"), ExitVersionParse},
		{"user aborted", Wrap(ErrUserAborted, "cancelled"), ExitUserAborted},
		{"path conflict", NewPathConflictError("blocked", "lib"), ExitPathConflict},
		{"generic", errors.New("disk full"), ExitGeneralError},
		{"explicit exit error", NewExitError(errors.New("x"), ExitNameConflict), ExitNameConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := NewIdentifierError("bad", "")
	err := NewExitError(inner, ExitInvalidIdentifier)

	require.Equal(t, inner.Error(), err.Error())
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "User Aborted", ExitCodeName(ExitUserAborted))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
