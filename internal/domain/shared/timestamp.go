package shared

import (
	"time"

	"identity-api/internal/domain/domainerr"
)

const never = "Never"

// Timestamp is the created/updated pair of an aggregate. Every transition
// returns a new value; a zero updatedAt means "not updated yet".
type Timestamp struct {
	createdAt time.Time
	updatedAt time.Time
}

func NewTimestamp() Timestamp { return Timestamp{createdAt: now()} }

// ParseTimestamp validates a pair coming from outside, e.g. a database row.
func ParseTimestamp(created time.Time, updated *time.Time) (Timestamp, error) {
	if created.IsZero() {
		return Timestamp{}, domainerr.Validation("Invalid timestamp")
	}
	if updated != nil && updated.Before(created) {
		return Timestamp{}, domainerr.Validation("Invalid timestamp")
	}

	return UnsafeTimestamp(created, updated), nil
}

func UnsafeTimestamp(created time.Time, updated *time.Time) Timestamp {
	ts := Timestamp{createdAt: created.UTC()}
	if updated != nil {
		ts.updatedAt = updated.UTC()
	}
	return ts
}

func (ts Timestamp) Touch() Timestamp {
	return Timestamp{createdAt: ts.createdAt, updatedAt: now()}
}

func (ts Timestamp) CreatedAt() time.Time { return ts.createdAt }

func (ts Timestamp) UpdatedAt() (time.Time, bool) {
	return ts.updatedAt, !ts.updatedAt.IsZero()
}

func (ts Timestamp) CreatedHuman() string { return formatHuman(ts.createdAt) }
func (ts Timestamp) CreatedDate() string  { return formatDate(ts.createdAt) }
func (ts Timestamp) CreatedClock() string { return formatClock(ts.createdAt) }

func (ts Timestamp) UpdatedHuman() string { return ts.updated(formatHuman) }
func (ts Timestamp) UpdatedDate() string  { return ts.updated(formatDate) }
func (ts Timestamp) UpdatedClock() string { return ts.updated(formatClock) }

func (ts Timestamp) updated(format func(time.Time) string) string {
	if ts.updatedAt.IsZero() {
		return never
	}
	return format(ts.updatedAt)
}

func (ts Timestamp) String() string {
	return "Created: " + ts.CreatedHuman() + ", Updated: " + ts.UpdatedHuman()
}
