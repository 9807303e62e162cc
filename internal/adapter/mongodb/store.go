package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// Store persists profiles as documents keyed by _id.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewStore creates a store over database.collection. The _id index is
// always unique, which makes InsertOne a conditional create.
func NewStore(client *mongo.Client, database, collection string) *Store {
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

// Get returns the profile document stored under id.
func (s *Store) Get(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if err != nil {
		return nil, mapError(err, id)
	}
	return &p, nil
}

// Create inserts p. A document with the same _id is never replaced;
// domain.ErrAlreadyExists is returned instead.
func (s *Store) Create(ctx context.Context, p *domain.Profile) error {
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return mapError(err, p.ID)
	}
	return nil
}

// Ping checks connectivity to the primary.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Server error codes treated as a refusal by the store.
var rejectedCodes = []int{
	13,  // Unauthorized
	18,  // AuthenticationFailed
	121, // DocumentValidationFailure
}

// mapError converts driver errors to domain errors.
func mapError(err error, id string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("profile %s: %w", id, domain.ErrAlreadyExists)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		for _, code := range rejectedCodes {
			if serverErr.HasErrorCode(code) {
				return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreRejected, err)
			}
		}
	}

	return fmt.Errorf("profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
}
