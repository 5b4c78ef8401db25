package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Sell one ticket. The user lookup and the ticket insert run inside one
// transaction: either the user exists at commit time and exactly one row is
// written, or the whole purchase aborts.
func (l *PostgresLedger) CreateTicket(ctx context.Context, userEmail string, connectionID int64, reserveSeats bool) (err error) {
	defer obs.Time(ctx, "ledger.CreateTicket")(&err)

	if l.DB == nil {
		return errors.New("buy ticket: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("buy ticket", fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var userID int64
	row := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1;`, userEmail)
	switch err := row.Scan(&userID); {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound("user %q does not exist", userEmail)
	case err != nil:
		return classify("buy ticket", fmt.Errorf("resolve user: %w", err))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tickets (user_id, connection_id, reserved_seats) VALUES ($1, $2, $3);`,
		userID, connectionID, reserveSeats,
	)
	if err != nil {
		return classify("buy ticket", fmt.Errorf("insert ticket: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classify("buy ticket", fmt.Errorf("commit tx: %w", err))
	}

	return nil
}
