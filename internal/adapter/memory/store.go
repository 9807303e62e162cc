// Package memory implements the profile document store in process memory.
// It backs local development and tests; documents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// Store keeps profile documents in a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	docs map[string]domain.Profile
}

// New creates an empty Store.
func New() *Store {
	return &Store{docs: make(map[string]domain.Profile)}
}

// Get returns a copy of the stored profile.
func (s *Store) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	p, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// Create stores p unless a document with the same ID already exists.
func (s *Store) Create(ctx context.Context, p *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("profile %s: %w: %w", p.ID, domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[p.ID]; ok {
		return fmt.Errorf("profile %s: %w", p.ID, domain.ErrAlreadyExists)
	}
	s.docs[p.ID] = *p
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close(context.Context) error { return nil }

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
