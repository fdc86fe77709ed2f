package shared

import "time"

// OccurredAt is the instant an event happened, always held in UTC.
type OccurredAt struct {
	t time.Time
}

func OccurredAtNow() OccurredAt { return OccurredAt{t: now()} }

func OccurredAtFrom(t time.Time) OccurredAt { return OccurredAt{t: t.UTC()} }

func (o OccurredAt) Time() time.Time { return o.t }
func (o OccurredAt) Human() string   { return formatHuman(o.t) }
func (o OccurredAt) Date() string    { return formatDate(o.t) }
func (o OccurredAt) Clock() string   { return formatClock(o.t) }
func (o OccurredAt) String() string  { return o.Human() }
