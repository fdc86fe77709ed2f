package ports

import (
	"context"

	"identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

type IdentityService interface {
	FindByID(ctx context.Context, id identity.ID) (*identity.Identity, error)
	QueryIdentities(ctx context.Context, spec identity.Spec, limit, offset int) ([]*identity.Identity, error)
	CreateIdentity(ctx context.Context, primaryEmail shared.Email) (*identity.Identity, error)
	UpdateIdentity(ctx context.Context, id identity.ID, primaryEmail *shared.Email) (*identity.Identity, error)
	SoftDeleteIdentity(ctx context.Context, id identity.ID) (*identity.Identity, error)
	RestoreSoftDeletedIdentity(ctx context.Context, id identity.ID) (*identity.Identity, error)
	PermanentlyDeleteIdentity(ctx context.Context, id identity.ID) error
}
