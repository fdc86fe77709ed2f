package shared

import "encoding/json"

// EventMeta is the envelope of a change event: which aggregate, at which
// version, when. AggregateVersion is the version the event represents.
type EventMeta struct {
	eventID          EventID
	occurredAt       OccurredAt
	aggregateID      string
	aggregateVersion int
}

func NewEventMeta(eventID EventID, occurredAt OccurredAt, aggregateID string, aggregateVersion int) EventMeta {
	return EventMeta{
		eventID:          eventID,
		occurredAt:       occurredAt,
		aggregateID:      aggregateID,
		aggregateVersion: aggregateVersion,
	}
}

func (m EventMeta) EventID() EventID       { return m.eventID }
func (m EventMeta) OccurredAt() OccurredAt { return m.occurredAt }
func (m EventMeta) AggregateID() string    { return m.aggregateID }
func (m EventMeta) AggregateVersion() int  { return m.aggregateVersion }

type eventMetaJSON struct {
	EventID          string `json:"event_id"`
	OccurredAt       string `json:"occurred_at"`
	AggregateID      string `json:"aggregate_id"`
	AggregateVersion int    `json:"aggregate_version"`
}

func (m EventMeta) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventMetaJSON{
		EventID:          m.eventID.String(),
		OccurredAt:       m.occurredAt.Time().Format("2006-01-02T15:04:05.000000000Z07:00"),
		AggregateID:      m.aggregateID,
		AggregateVersion: m.aggregateVersion,
	})
}
