package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Register a new station. The uniqueness check and the insert share one
// transaction so two concurrent registrations of the same key cannot both
// succeed.
func (l *PostgresLedger) CreateStation(ctx context.Context, st domain.Station) (err error) {
	defer obs.Time(ctx, "ledger.CreateStation")(&err)

	if l.DB == nil {
		return errors.New("create station: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("create station", fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	row := tx.QueryRowContext(ctx, `SELECT id FROM stations WHERE id = $1;`, st.Key.String())
	switch err := row.Scan(&existing); {
	case err == nil:
		return domain.ErrConflict("station %q already exists", st.Key.String())
	case !errors.Is(err, sql.ErrNoRows):
		return classify("create station", fmt.Errorf("check existing: %w", err))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO stations (id, details) VALUES ($1, $2);`,
		st.Key.String(), st.Details,
	)
	if err != nil {
		return classify("create station", fmt.Errorf("insert: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classify("create station", fmt.Errorf("commit tx: %w", err))
	}

	return nil
}
