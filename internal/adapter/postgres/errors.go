package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// pgCodes maps SQLSTATE codes to domain errors.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: username taken
	"23503": domain.ErrNotFound,      // foreign_key_violation: user or tweet gone
	"23514": domain.ErrValidation,    // check_violation
}

// MapError wraps err with the entity and id and translates driver errors
// into domain errors. Context errors are wrapped unchanged.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	prefix := fmt.Sprintf("%s %d", entity, id)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", prefix, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s: %w", prefix, mapped)
		}
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
