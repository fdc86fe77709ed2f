package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-api/internal/domain/domainerr"
)

func TestParseEmail_Table(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  Email
		valid bool
	}{
		{"plain", "a@b.com", "a@b.com", true},
		{"trim and lowercase", "  John.Doe@Example.COM \t", "john.doe@example.com", true},
		{"subdomain", "x@mail.example.org", "x@mail.example.org", true},
		{"empty", "", "", false},
		{"only spaces", "   ", "", false},
		{"no at", "abc.example.com", "", false},
		{"no tld", "a@b", "", false},
		{"two ats", "a@@b.com", "", false},
		{"inner space", "a b@c.com", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEmail(tt.raw)
			if !tt.valid {
				require.Error(t, err)
				assert.True(t, domainerr.IsKind(err, domainerr.KindValidation))
				assert.EqualError(t, err, "validation: Invalid email address")
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsEmail(got.String()))
		})
	}
}

func TestUnsafeEmail_NormalizesOnly(t *testing.T) {
	assert.Equal(t, Email("not-an-email"), UnsafeEmail("  NOT-an-email "))
	assert.False(t, IsEmail("not-an-email"))
}
