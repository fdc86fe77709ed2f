package identity

import "identity-api/internal/domain/shared"

type EventType string

const (
	EventCreated     EventType = "IdentityCreated"
	EventUpdated     EventType = "IdentityUpdated"
	EventSoftDeleted EventType = "IdentitySoftDeleted"
	EventRestored    EventType = "IdentityRestoredFromSoftDeleted"
	EventDeleted     EventType = "IdentityDeleted"
)

var eventNames = map[EventType]string{
	EventCreated:     "identity.created",
	EventUpdated:     "identity.updated",
	EventSoftDeleted: "identity.soft_deleted",
	EventRestored:    "identity.restored",
	EventDeleted:     "identity.deleted",
}

// Event is a change record of one identity. Building one has no side effects.
type Event struct {
	Type EventType        `json:"type"`
	Name string           `json:"event_name"`
	Meta shared.EventMeta `json:"meta"`
}

func NewEvent(t EventType, meta shared.EventMeta) Event {
	return Event{Type: t, Name: eventNames[t], Meta: meta}
}

// EventTypes lists every event an identity can produce.
func EventTypes() []EventType {
	return []EventType{EventCreated, EventUpdated, EventSoftDeleted, EventRestored, EventDeleted}
}

// RoutingKey is the event name, used by brokers that route on strings.
func (t EventType) RoutingKey() string { return eventNames[t] }
