package identity

import "identity-api/internal/domain/shared"

type Spec = shared.Specification[*Identity]

func All() Spec {
	return shared.SpecFunc[*Identity](func(*Identity) bool { return true })
}

func Active() Spec {
	return shared.SpecFunc[*Identity](func(i *Identity) bool { return !i.deleted.IsDeleted() })
}

func SoftDeleted() Spec {
	return shared.SpecFunc[*Identity](func(i *Identity) bool { return i.deleted.IsDeleted() })
}

func WithPrimaryEmail(email shared.Email) Spec {
	return shared.SpecFunc[*Identity](func(i *Identity) bool {
		return !email.IsZero() && i.primaryEmail == email
	})
}
