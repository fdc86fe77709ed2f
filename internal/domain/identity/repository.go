package identity

import "context"

// Repository is the storage port. Every adapter must keep these semantics:
//   - Save upserts by id and overwrites the stored value wholesale;
//   - FindByID returns (nil, nil) for a missing id;
//   - Query filters with spec first, then returns the [offset, offset+limit) window;
//   - Delete of a missing id is a no-op.
//
// No optimistic locking happens here; callers compare Version themselves.
type Repository interface {
	Save(ctx context.Context, identity *Identity) error
	FindByID(ctx context.Context, id ID) (*Identity, error)
	Query(ctx context.Context, spec Spec, limit, offset int) ([]*Identity, error)
	Delete(ctx context.Context, id ID) error
}

// Window clamps a limit/offset pair against n filtered items and returns
// the slice bounds. Negative inputs count as zero.
func Window(n, limit, offset int) (int, int) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := offset + limit
	if end > n || end < offset {
		end = n
	}
	return offset, end
}
