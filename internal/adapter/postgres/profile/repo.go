// Package profile implements the profile document store using PostgreSQL.
// Profiles live as JSONB documents in the shared documents table, keyed by
// (collection, id).
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/quecocino-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

const documentsTable = "documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool       *pgxpool.Pool
	collection string
}

// New creates a new profile repository writing into the given collection.
func New(pool *pgxpool.Pool, collection string) *Repo {
	return &Repo{pool: pool, collection: collection}
}

// Get returns the profile document stored under id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Profile, error) {
	query, args, err := psql.
		Select("data").
		From(documentsTable).
		Where(sq.Eq{"collection": r.collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var data []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile %s: decode document: %w: %w", id, domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}

// Create inserts the profile only when no document with the same id exists.
// A present document is never overwritten; domain.ErrAlreadyExists is
// returned instead.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile %s: encode document: %w", p.ID, err)
	}

	query, args, err := psql.
		Insert(documentsTable).
		Columns("collection", "id", "data", "created_at").
		Values(r.collection, p.ID, data, p.CreatedAt).
		Suffix("ON CONFLICT (collection, id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", p.ID, domain.ErrAlreadyExists)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
