// Package profile reconciles authenticated identities with their profile
// documents in the document store.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/quecocino-backend/internal/config"
	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// profileStore defines the document store operations needed by profile service.
// Create must be an atomic create-if-absent and return domain.ErrAlreadyExists
// when a document with the same ID is already stored.
type profileStore interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
}

// Service implements profile reconciliation and lookup.
type Service struct {
	log   *slog.Logger
	store profileStore
	cfg   config.ProfileConfig
	now   func() time.Time
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, store profileStore, cfg config.ProfileConfig) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		store: store,
		cfg:   cfg,
		now:   now,
	}
}

// now truncates to milliseconds, the coarsest precision among the stores,
// so a freshly created profile equals the one read back later.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// withTimeout applies the configured store timeout unless the caller already
// set a deadline.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || s.cfg.ReconcileTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.ReconcileTimeout)
}

// storeError guarantees that a store failure carries one of the store error
// kinds. Anything the adapter could not classify is treated as unavailable.
func storeError(err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) || errors.Is(err, domain.ErrStoreRejected) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
