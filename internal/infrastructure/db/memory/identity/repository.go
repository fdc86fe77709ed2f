// Package identity is the process-local implementation of identity.Repository.
package identity

import (
	"context"
	"sort"
	"sync"

	"identity-api/internal/domain/identity"
)

// Repository keeps clones keyed by id, so callers never share a stored
// instance and every persisted change has to go through Save.
//
// Query orders the filtered set by creation time, then id.
type Repository struct {
	mu    sync.RWMutex
	items map[string]*identity.Identity
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]*identity.Identity)}
}

func (r *Repository) Save(_ context.Context, i *identity.Identity) error {
	c := i.Clone()

	r.mu.Lock()
	r.items[c.ID().String()] = c
	r.mu.Unlock()

	return nil
}

func (r *Repository) FindByID(_ context.Context, id identity.ID) (*identity.Identity, error) {
	r.mu.RLock()
	i, ok := r.items[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	return i.Clone(), nil
}

func (r *Repository) Query(
	_ context.Context,
	spec identity.Spec,
	limit, offset int,
) ([]*identity.Identity, error) {
	// specs only ever see clones, so a predicate cannot reach stored state
	r.mu.RLock()
	all := make([]*identity.Identity, 0, len(r.items))
	for _, i := range r.items {
		all = append(all, i.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(all, func(a, b int) bool {
		ca, cb := all[a].Timestamps().CreatedAt(), all[b].Timestamps().CreatedAt()
		if !ca.Equal(cb) {
			return ca.Before(cb)
		}
		return all[a].ID() < all[b].ID()
	})

	filtered := make([]*identity.Identity, 0, len(all))
	for _, i := range all {
		if spec == nil || spec.IsSatisfiedBy(i) {
			filtered = append(filtered, i)
		}
	}

	low, high := identity.Window(len(filtered), limit, offset)
	out := make([]*identity.Identity, high-low)
	copy(out, filtered[low:high])

	return out, nil
}

func (r *Repository) Delete(_ context.Context, id identity.ID) error {
	r.mu.Lock()
	delete(r.items, id.String())
	r.mu.Unlock()

	return nil
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
