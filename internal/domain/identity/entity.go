package identity

import "identity-api/internal/domain/shared"

// Identity is the aggregate root. State changes only through its methods;
// every effective change bumps version by one and records an Event.
type Identity struct {
	id           ID
	primaryEmail shared.Email
	timestamps   shared.Timestamp
	deleted      shared.SoftDelete
	version      int

	events []Event
}

// Create starts a new identity at version 0. The inputs are already
// validated value objects; a zero email means none.
func Create(id ID, primaryEmail shared.Email) *Identity {
	i := &Identity{
		id:           id,
		primaryEmail: primaryEmail,
		timestamps:   shared.NewTimestamp(),
		deleted:      shared.NewSoftDelete(),
		version:      0,
	}

	i.record(EventCreated, i.meta(i.version))

	return i
}

// Rehydrate rebuilds a stored identity without recording events.
func Rehydrate(
	id ID,
	primaryEmail shared.Email,
	timestamps shared.Timestamp,
	deleted shared.SoftDelete,
	version int,
) *Identity {
	return &Identity{
		id:           id,
		primaryEmail: primaryEmail,
		timestamps:   timestamps,
		deleted:      deleted,
		version:      version,
	}
}

// ChangePrimaryEmail is a true no-op when the email does not change.
func (i *Identity) ChangePrimaryEmail(email shared.Email) {
	if i.primaryEmail == email {
		return
	}

	meta := i.NextMeta()
	i.primaryEmail = email
	i.touch()
	i.record(EventUpdated, meta)
}

// MarkAsSoftDeleted always touches, even when already deleted, so version
// counts invocations rather than effective state changes.
func (i *Identity) MarkAsSoftDeleted() {
	meta := i.NextMeta()
	i.deleted = i.deleted.MarkDeleted()
	i.touch()
	i.record(EventSoftDeleted, meta)
}

// RestoreFromSoftDeleted always touches, like MarkAsSoftDeleted.
func (i *Identity) RestoreFromSoftDeleted() {
	meta := i.NextMeta()
	i.deleted = i.deleted.Restore()
	i.touch()
	i.record(EventRestored, meta)
}

// NextMeta is the envelope of the change about to happen. It does not
// mutate the identity.
func (i *Identity) NextMeta() shared.EventMeta {
	return i.meta(i.version + 1)
}

func (i *Identity) meta(version int) shared.EventMeta {
	return shared.NewEventMeta(shared.NewEventID(), shared.OccurredAtNow(), i.id.String(), version)
}

func (i *Identity) touch() {
	i.timestamps = i.timestamps.Touch()
	i.version++
}

func (i *Identity) record(t EventType, meta shared.EventMeta) {
	i.events = append(i.events, NewEvent(t, meta))
}

func (i *Identity) ID() ID { return i.id }

func (i *Identity) PrimaryEmail() (shared.Email, bool) {
	return i.primaryEmail, !i.primaryEmail.IsZero()
}

func (i *Identity) Timestamps() shared.Timestamp { return i.timestamps }
func (i *Identity) Deleted() shared.SoftDelete   { return i.deleted }
func (i *Identity) Version() int                 { return i.version }

// PendingEvents returns the events recorded since the last ClearEvents.
func (i *Identity) PendingEvents() []Event {
	out := make([]Event, len(i.events))
	copy(out, i.events)
	return out
}

func (i *Identity) ClearEvents() { i.events = nil }

// Clone returns an independent copy without pending events.
func (i *Identity) Clone() *Identity {
	c := *i
	c.events = nil
	return &c
}
