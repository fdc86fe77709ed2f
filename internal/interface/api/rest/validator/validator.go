package validator

import (
	"strconv"
	"strings"

	"identity-api/internal/domain/domainerr"
	"identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ValidatePagination parses limit/offset query values. Empty means default.
func ValidatePagination(limit, offset string) (int, int, error) {
	l := DefaultLimit
	if limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v < 0 || v > MaxLimit {
			return 0, 0, domainerr.Validation("limit must be an integer between 0 and 100")
		}
		l = v
	}

	o := 0
	if offset != "" {
		v, err := strconv.Atoi(offset)
		if err != nil || v < 0 {
			return 0, 0, domainerr.Validation("offset must be a non-negative integer")
		}
		o = v
	}

	return l, o, nil
}

// QuerySpec builds the list filter from the status and email query values.
func QuerySpec(status, email string) (identity.Spec, error) {
	var specs []identity.Spec

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "active":
		specs = append(specs, identity.Active())
	case "deleted":
		specs = append(specs, identity.SoftDeleted())
	case "all":
		specs = append(specs, identity.All())
	default:
		return nil, domainerr.Validation("status must be one of active, deleted, all")
	}

	if email != "" {
		e, err := shared.ParseEmail(email)
		if err != nil {
			return nil, err
		}
		specs = append(specs, identity.WithPrimaryEmail(e))
	}

	return shared.And(specs...), nil
}
