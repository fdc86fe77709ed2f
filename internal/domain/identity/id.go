package identity

import (
	"github.com/google/uuid"

	"identity-api/internal/domain/domainerr"
	"identity-api/internal/domain/shared"
)

// ID is the identity key. It keeps the exact string it was parsed from.
type ID string

func NewID() ID { return ID(uuid.NewString()) }

func ParseID(s string) (ID, error) {
	if !shared.IsUUIDv4(s) {
		return "", domainerr.Validation("Invalid identity id")
	}
	return ID(s), nil
}

// UnsafeID skips validation; for values that are already known good.
func UnsafeID(s string) ID { return ID(s) }

func IsID(s string) bool { return shared.IsUUIDv4(s) }

func (id ID) String() string { return string(id) }
