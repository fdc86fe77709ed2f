package identity

import "time"

type (
	Identity struct {
		ID           string
		PrimaryEmail *string

		CreatedAt time.Time
		UpdatedAt *time.Time

		Deleted   bool
		DeletedAt *time.Time

		Version int64
	}
	Identities []*Identity
)
