package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// Store failures keep their cause: errors.Is matches both the domain kind
// and the original error.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case pgErr.Code == "42501", // insufficient_privilege
			pgErr.Code == "25006", // read_only_sql_transaction
			strings.HasPrefix(pgErr.Code, "28"), // invalid authorization
			strings.HasPrefix(pgErr.Code, "23"): // integrity constraint
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreRejected, err)
		}
	}

	// Connection failures, timeouts and anything unclassified.
	return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
}
