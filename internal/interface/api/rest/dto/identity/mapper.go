package identity

import (
	domain "identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

// ToResponseIdentity only reads the aggregate.
func ToResponseIdentity(i *domain.Identity) Identity {
	out := Identity{
		ID:        i.ID().String(),
		CreatedAt: i.Timestamps().CreatedHuman(),
		UpdatedAt: i.Timestamps().UpdatedHuman(),
		Deleted:   i.Deleted().IsDeleted(),
		DeletedAt: i.Deleted().Status(),
		Version:   i.Version(),
	}
	if email, ok := i.PrimaryEmail(); ok {
		s := email.String()
		out.PrimaryEmail = &s
	}

	return out
}

func ToResponseIdentities(is []*domain.Identity) Identities {
	out := make(Identities, len(is))
	for idx, i := range is {
		out[idx] = ToResponseIdentity(i)
	}

	return out
}

// ToDomainEmail returns nil when the request carries no email.
func ToDomainEmail(r Request) (*shared.Email, error) {
	if r.PrimaryEmail == nil {
		return nil, nil
	}
	email, err := shared.ParseEmail(*r.PrimaryEmail)
	if err != nil {
		return nil, err
	}

	return &email, nil
}
