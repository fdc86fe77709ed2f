package domainerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Table(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    Kind
		message string
		text    string
	}{
		{"validation", Validation("Invalid email address"), KindValidation, "Invalid email address", "validation: Invalid email address"},
		{"conflict", Conflict("identity already exists"), KindConflict, "identity already exists", "conflict: identity already exists"},
		{"not found", NotFound("identity"), KindNotFound, "identity", "notfound: identity"},
		{"forbidden", Forbidden("nope"), KindForbidden, "nope", "forbidden: nope"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, tt.message, tt.err.Message())
			assert.EqualError(t, tt.err, tt.text)
			assert.Nil(t, tt.err.Unwrap())
		})
	}
}

func TestConflictWith_KeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := ConflictWith("identity already exists", cause)

	assert.Equal(t, KindConflict, err.Kind())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestIs_MatchesByKind(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NotFound("identity"))

	assert.ErrorIs(t, wrapped, NotFound(""))
	assert.NotErrorIs(t, wrapped, Validation(""))
	assert.False(t, NotFound("x").Is(errors.New("plain")))
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf(fmt.Errorf("wrap: %w", Forbidden("no")))
	require.True(t, ok)
	assert.Equal(t, KindForbidden, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, IsKind(Validation("x"), KindValidation))
	assert.False(t, IsKind(Validation("x"), KindConflict))
	assert.False(t, IsKind(nil, KindValidation))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Validation", KindValidation.String())
	assert.Equal(t, "Conflict", KindConflict.String())
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "Forbidden", KindForbidden.String())
	assert.Equal(t, "Unknown", Kind(0).String())
}
