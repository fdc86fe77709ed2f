package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"identity-api/internal/application/ports"
	"identity-api/internal/domain/domainerr"
	"identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
)

const notFoundIdentity = "identity"

type IdentityService struct {
	repository identity.Repository
	publisher  ports.EventPublisher
	mCounter   *prometheus.CounterVec
	logger     *zap.Logger
}

// NewIdentityService wires the service. publisher may be nil, in which case
// recorded events are dropped after each command.
func NewIdentityService(
	repository identity.Repository,
	publisher ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.IdentityService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IdentityService{
		repository: repository,
		publisher:  publisher,
		mCounter:   mCounter,
		logger:     logger,
	}
}

func (s *IdentityService) FindByID(ctx context.Context, id identity.ID) (*identity.Identity, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *IdentityService) QueryIdentities(
	ctx context.Context,
	spec identity.Spec,
	limit, offset int,
) ([]*identity.Identity, error) {
	return s.repository.Query(ctx, spec, limit, offset)
}

func (s *IdentityService) CreateIdentity(ctx context.Context, primaryEmail shared.Email) (*identity.Identity, error) {
	i := identity.Create(identity.NewID(), primaryEmail)

	if err := s.commit(ctx, i, "identity_created_total"); err != nil {
		return nil, err
	}

	return i, nil
}

// UpdateIdentity changes the primary email when one is given. A nil email
// still persists the loaded identity unchanged.
func (s *IdentityService) UpdateIdentity(
	ctx context.Context,
	id identity.ID,
	primaryEmail *shared.Email,
) (*identity.Identity, error) {
	i, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if primaryEmail != nil {
		i.ChangePrimaryEmail(*primaryEmail)
	}

	if err = s.commit(ctx, i, "identity_updated_total"); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *IdentityService) SoftDeleteIdentity(ctx context.Context, id identity.ID) (*identity.Identity, error) {
	i, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	i.MarkAsSoftDeleted()

	if err = s.commit(ctx, i, "identity_soft_deleted_total"); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *IdentityService) RestoreSoftDeletedIdentity(ctx context.Context, id identity.ID) (*identity.Identity, error) {
	i, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	i.RestoreFromSoftDeleted()

	if err = s.commit(ctx, i, "identity_restored_total"); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *IdentityService) PermanentlyDeleteIdentity(ctx context.Context, id identity.ID) error {
	i, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	// envelope of the removal, computed before the row is gone
	event := identity.NewEvent(identity.EventDeleted, i.NextMeta())

	if err = s.repository.Delete(ctx, i.ID()); err != nil {
		return err
	}

	s.inc("identity_deleted_total")
	s.publish(ctx, event)

	return nil
}

func (s *IdentityService) load(ctx context.Context, id identity.ID) (*identity.Identity, error) {
	i, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domainerr.NotFound(notFoundIdentity)
	}

	return i, nil
}

func (s *IdentityService) commit(ctx context.Context, i *identity.Identity, counter string) error {
	if err := s.repository.Save(ctx, i); err != nil {
		return err
	}

	s.inc(counter)
	s.publish(ctx, i.PendingEvents()...)
	i.ClearEvents()

	return nil
}

func (s *IdentityService) inc(counter string) {
	if s.mCounter != nil {
		s.mCounter.WithLabelValues(counter).Inc()
	}
}

// publish never fails the command: the change is already stored.
func (s *IdentityService) publish(ctx context.Context, events ...identity.Event) {
	if s.publisher == nil || len(events) == 0 {
		return
	}

	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("publish identity events failed",
			zap.Error(err),
			zap.String("aggregate_id", events[0].Meta.AggregateID()),
			zap.Int("events", len(events)),
		)
	}
}
