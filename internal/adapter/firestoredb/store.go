package firestoredb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// pingDocID is read by Ping; it is never written.
const pingDocID = "_ping"

// Store persists profiles as documents of one collection, keyed by id.
type Store struct {
	client *firestore.Client
	coll   *firestore.CollectionRef
}

// NewStore creates a store over the named collection.
func NewStore(client *firestore.Client, collection string) *Store {
	return &Store{client: client, coll: client.Collection(collection)}
}

// Get returns the profile document stored under id.
func (s *Store) Get(ctx context.Context, id string) (*domain.Profile, error) {
	snap, err := s.coll.Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, id)
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("profile %s: decode document: %w: %w", id, domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}

// Create writes p only if the document does not exist yet. Firestore
// enforces this server-side and reports AlreadyExists otherwise.
func (s *Store) Create(ctx context.Context, p *domain.Profile) error {
	if _, err := s.coll.Doc(p.ID).Create(ctx, p); err != nil {
		return mapError(err, p.ID)
	}
	return nil
}

// Ping reads a sentinel document. A missing document still proves the
// backend answered.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.coll.Doc(pingDocID).Get(ctx)
	if err == nil || status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

// Close releases the client.
func (s *Store) Close(context.Context) error {
	return s.client.Close()
}

// mapError converts gRPC status errors to domain errors.
func mapError(err error, id string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("profile %s: %w", id, domain.ErrAlreadyExists)
	case codes.PermissionDenied, codes.Unauthenticated, codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreRejected, err)
	default:
		// Unavailable, DeadlineExceeded, ResourceExhausted, Internal and
		// anything without a status.
		return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}
}
