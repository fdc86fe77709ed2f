package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"identity-api/internal/domain/domainerr"
	domain "identity-api/internal/domain/identity"
	"identity-api/internal/infrastructure/db/postgres"
)

// Repository stores identities in the identities table. Query loads rows in
// (created_at, id) order and applies the filter in process, so the window is
// taken after filtering like in the in-memory adapter.
type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, CreateTable); err != nil {
		return fmt.Errorf("create identities table: %w", err)
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, i *domain.Identity) error {
	m := toDBModel(i)

	_, err := r.db.Exec(ctx, UpsertIdentity,
		m.ID, m.PrimaryEmail, m.CreatedAt, m.UpdatedAt, m.Deleted, m.DeletedAt, m.Version,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return domainerr.ConflictWith("identity already exists", err)
		}
		return fmt.Errorf("save identity %s: %w", m.ID, err)
	}

	return nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Identity, error) {
	m := new(Identity)
	err := r.db.QueryRow(ctx, SelectIdentityByID, id.String()).Scan(
		&m.ID,
		&m.PrimaryEmail,

		&m.CreatedAt,
		&m.UpdatedAt,

		&m.Deleted,
		&m.DeletedAt,

		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find identity %s: %w", id, err)
	}

	return fromDBModel(m)
}

func (r *Repository) Query(
	ctx context.Context,
	spec domain.Spec,
	limit, offset int,
) ([]*domain.Identity, error) {
	rows, err := r.db.Query(ctx, SelectIdentities)
	if err != nil {
		return nil, fmt.Errorf("query identities: %w", err)
	}
	defer rows.Close()

	var filtered []*domain.Identity
	for rows.Next() {
		m := new(Identity)

		if err = rows.Scan(
			&m.ID,
			&m.PrimaryEmail,

			&m.CreatedAt,
			&m.UpdatedAt,

			&m.Deleted,
			&m.DeletedAt,

			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("scan identity: %w", err)
		}

		i, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		if spec == nil || spec.IsSatisfiedBy(i) {
			filtered = append(filtered, i)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("query identities: %w", err)
	}

	low, high := domain.Window(len(filtered), limit, offset)

	return filtered[low:high], nil
}

func (r *Repository) Delete(ctx context.Context, id domain.ID) error {
	if _, err := r.db.Exec(ctx, DeleteIdentityByID, id.String()); err != nil {
		return fmt.Errorf("delete identity %s: %w", id, err)
	}
	return nil
}
