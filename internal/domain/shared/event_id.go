package shared

import (
	"github.com/google/uuid"

	"identity-api/internal/domain/domainerr"
)

type EventID string

func NewEventID() EventID { return EventID(uuid.NewString()) }

func ParseEventID(s string) (EventID, error) {
	if !IsUUIDv4(s) {
		return "", domainerr.Validation("Invalid event id")
	}
	return EventID(s), nil
}

func UnsafeEventID(s string) EventID { return EventID(s) }

func IsEventID(s string) bool { return IsUUIDv4(s) }

func (id EventID) String() string { return string(id) }
