package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"rail-booking-service/internal/domain"
)

// classify maps store-level failures onto the domain error taxonomy.
// Uniqueness violations become conflicts, referential/check violations become
// validation errors, and connection or shutdown classes become retryable
// transient errors. Anything else is wrapped and propagated unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrTransient(err, "%s: ledger timeout", op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return domain.ErrConflict("%s: duplicate key", op)
		case pgErr.Code == "23503" || pgErr.Code == "23514":
			return domain.ErrValidation("%s: %s", op, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57"):
			return domain.ErrTransient(err, "%s: ledger unavailable", op)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
