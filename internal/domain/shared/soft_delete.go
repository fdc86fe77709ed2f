package shared

import (
	"time"

	"identity-api/internal/domain/domainerr"
)

const (
	statusActive  = "Active"
	statusDeleted = "Deleted"
)

// SoftDelete is the reversible deletion flag of an aggregate.
type SoftDelete struct {
	deleted   bool
	deletedAt time.Time
}

func NewSoftDelete() SoftDelete { return SoftDelete{} }

// ParseSoftDelete rejects a deletion time on an active state.
func ParseSoftDelete(deleted bool, deletedAt *time.Time) (SoftDelete, error) {
	if !deleted && deletedAt != nil {
		return SoftDelete{}, domainerr.Validation("Invalid soft delete state")
	}
	return UnsafeSoftDelete(deleted, deletedAt), nil
}

func UnsafeSoftDelete(deleted bool, deletedAt *time.Time) SoftDelete {
	d := SoftDelete{deleted: deleted}
	if deletedAt != nil {
		d.deletedAt = deletedAt.UTC()
	}
	return d
}

// MarkDeleted stamps the deletion time with now, also when already deleted.
func (d SoftDelete) MarkDeleted() SoftDelete {
	return SoftDelete{deleted: true, deletedAt: now()}
}

func (d SoftDelete) Restore() SoftDelete { return SoftDelete{} }

func (d SoftDelete) IsDeleted() bool { return d.deleted }

func (d SoftDelete) DeletedAt() (time.Time, bool) {
	return d.deletedAt, !d.deletedAt.IsZero()
}

func (d SoftDelete) Status() string {
	if !d.deleted {
		return statusActive
	}
	if d.deletedAt.IsZero() {
		return statusDeleted
	}
	return statusDeleted + " at " + formatHuman(d.deletedAt)
}

func (d SoftDelete) String() string { return d.Status() }
