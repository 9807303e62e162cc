package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// Reconcile makes sure a profile document exists for identity and returns
// the stored canonical document.
//
// An existing document is returned verbatim and never refreshed from the
// identity. When no document exists, one is created from the identity with
// empty strings for absent fields. If a concurrent sign-in creates the
// document first, the stored document wins and is returned.
func (s *Service) Reconcile(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	if identity.ID == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.store.Get(ctx, identity.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("profile.Reconcile get: %w", storeError(err))
	}

	candidate := domain.NewProfile(identity, s.now())

	if err := s.store.Create(ctx, &candidate); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("profile.Reconcile create: %w", storeError(err))
		}

		stored, err := s.store.Get(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("profile.Reconcile get after conflict: %w", storeError(err))
		}

		s.log.InfoContext(ctx, "profile created concurrently, using stored document",
			slog.String("profile_id", identity.ID))

		return stored, nil
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("profile_id", candidate.ID),
		slog.String("provider", identity.Provider))

	return &candidate, nil
}

// Get returns the stored profile for id.
// Returns domain.ErrNotFound if no document exists.
func (s *Service) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("profile.Get: %w", err)
		}
		return nil, fmt.Errorf("profile.Get: %w", storeError(err))
	}

	return p, nil
}
