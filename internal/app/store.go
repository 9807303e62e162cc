package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quecocino-backend/internal/adapter/firestoredb"
	"github.com/heartmarshall/quecocino-backend/internal/adapter/memory"
	"github.com/heartmarshall/quecocino-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/quecocino-backend/internal/adapter/postgres"
	pgprofile "github.com/heartmarshall/quecocino-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/quecocino-backend/internal/config"
	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// ProfileStore is the document store selected by configuration.
type ProfileStore interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Ping(ctx context.Context) error
}

// OpenStore connects the store named by cfg.Store.Driver. The returned
// close function releases the underlying client and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ProfileStore, func(context.Context) error, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		closeFn := func(context.Context) error {
			pool.Close()
			return nil
		}
		return pgprofile.New(pool, cfg.Store.Collection), closeFn, nil

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		store := mongodb.NewStore(client, cfg.Mongo.Database, cfg.Store.Collection)
		return store, store.Close, nil

	case config.DriverFirestore:
		client, err := firestoredb.NewClient(ctx, cfg.Firestore)
		if err != nil {
			return nil, nil, err
		}
		store := firestoredb.NewStore(client, cfg.Store.Collection)
		return store, store.Close, nil

	case config.DriverMemory:
		logger.Warn("using in-memory profile store, documents are lost on restart")
		store := memory.New()
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
