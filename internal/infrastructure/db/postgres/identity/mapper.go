package identity

import (
	"fmt"
	"time"

	domain "identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

func fromDBModel(model *Identity) (*domain.Identity, error) {
	ts, err := shared.ParseTimestamp(model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("identity %s: %w", model.ID, err)
	}
	deleted, err := shared.ParseSoftDelete(model.Deleted, model.DeletedAt)
	if err != nil {
		return nil, fmt.Errorf("identity %s: %w", model.ID, err)
	}

	var email shared.Email
	if model.PrimaryEmail != nil {
		email = shared.UnsafeEmail(*model.PrimaryEmail)
	}

	return domain.Rehydrate(
		domain.UnsafeID(model.ID),
		email,
		ts,
		deleted,
		int(model.Version),
	), nil
}

func toDBModel(i *domain.Identity) *Identity {
	m := &Identity{
		ID:        i.ID().String(),
		CreatedAt: i.Timestamps().CreatedAt(),
		Deleted:   i.Deleted().IsDeleted(),
		Version:   int64(i.Version()),
	}
	if email, ok := i.PrimaryEmail(); ok {
		s := email.String()
		m.PrimaryEmail = &s
	}
	if upd, ok := i.Timestamps().UpdatedAt(); ok {
		m.UpdatedAt = timePtr(upd)
	}
	if at, ok := i.Deleted().DeletedAt(); ok {
		m.DeletedAt = timePtr(at)
	}

	return m
}

func timePtr(t time.Time) *time.Time { return &t }
