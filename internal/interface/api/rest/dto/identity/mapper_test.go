package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-api/internal/domain/domainerr"
	domain "identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

func TestToResponseIdentity(t *testing.T) {
	i := domain.Create(domain.NewID(), shared.UnsafeEmail("a@b.com"))

	out := ToResponseIdentity(i)

	assert.Equal(t, i.ID().String(), out.ID)
	require.NotNil(t, out.PrimaryEmail)
	assert.Equal(t, "a@b.com", *out.PrimaryEmail)
	assert.Equal(t, "Never", out.UpdatedAt)
	assert.Equal(t, "Active", out.DeletedAt)
	assert.False(t, out.Deleted)
	assert.Equal(t, 0, out.Version)
	assert.Len(t, i.PendingEvents(), 1)
}

func TestToResponseIdentity_NoEmail(t *testing.T) {
	out := ToResponseIdentity(domain.Create(domain.NewID(), ""))

	assert.Nil(t, out.PrimaryEmail)
}

func TestToDomainEmail(t *testing.T) {
	raw := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     Request
		want    *shared.Email
		wantErr bool
	}{
		{name: "absent", req: Request{}},
		{name: "normalized", req: Request{PrimaryEmail: raw(" A@B.COM ")}, want: func() *shared.Email {
			e := shared.UnsafeEmail("a@b.com")
			return &e
		}()},
		{name: "invalid", req: Request{PrimaryEmail: raw("a@b")}, wantErr: true},
		{name: "empty string", req: Request{PrimaryEmail: raw("")}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDomainEmail(tt.req)
			if tt.wantErr {
				assert.True(t, domainerr.IsKind(err, domainerr.KindValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
