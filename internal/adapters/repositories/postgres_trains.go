package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Register a train under its pre-assigned key. The uniqueness check and the
// insert share one transaction.
func (l *PostgresLedger) CreateTrain(ctx context.Context, t domain.Train) (err error) {
	defer obs.Time(ctx, "ledger.CreateTrain")(&err)

	if l.DB == nil {
		return errors.New("create train: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("create train", fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	row := tx.QueryRowContext(ctx, `SELECT id FROM trains WHERE id = $1;`, t.Key.String())
	switch err := row.Scan(&existing); {
	case err == nil:
		return domain.ErrConflict("train %q already exists", t.Key.String())
	case !errors.Is(err, sql.ErrNoRows):
		return classify("create train", fmt.Errorf("check existing: %w", err))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO trains (id, capacity, status) VALUES ($1, $2, $3);`,
		t.Key.String(), t.Capacity, int(t.Status),
	)
	if err != nil {
		return classify("create train", fmt.Errorf("insert: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classify("create train", fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Partially update a train. The SET list is assembled from the supplied
// fields only; with both nil no statement is issued at all.
func (l *PostgresLedger) UpdateTrain(ctx context.Context, key domain.Key, capacity *int, status *domain.TrainStatus) (err error) {
	defer obs.Time(ctx, "ledger.UpdateTrain")(&err)

	if l.DB == nil {
		return errors.New("update train: DB is nil")
	}

	assignments := make([]string, 0, 2)
	params := make([]any, 0, 3)

	if capacity != nil {
		params = append(params, *capacity)
		assignments = append(assignments, fmt.Sprintf("capacity = $%d", len(params)))
	}
	if status != nil {
		params = append(params, int(*status))
		assignments = append(assignments, fmt.Sprintf("status = $%d", len(params)))
	}

	if len(assignments) == 0 {
		return nil
	}

	params = append(params, key.String())
	query := fmt.Sprintf(
		`UPDATE trains SET %s WHERE id = $%d;`,
		strings.Join(assignments, ", "), len(params),
	)

	if _, err := l.DB.ExecContext(ctx, query, params...); err != nil {
		return classify("update train", fmt.Errorf("exec: %w", err))
	}

	return nil
}

// Delete a train by key. Schedules referencing the train are left in the
// graph store untouched; callers own that cleanup.
func (l *PostgresLedger) DeleteTrain(ctx context.Context, key domain.Key) (err error) {
	defer obs.Time(ctx, "ledger.DeleteTrain")(&err)

	if l.DB == nil {
		return errors.New("delete train: DB is nil")
	}

	if _, err := l.DB.ExecContext(ctx, `DELETE FROM trains WHERE id = $1;`, key.String()); err != nil {
		return classify("delete train", fmt.Errorf("exec: %w", err))
	}

	return nil
}

// Fetch a train by key; (nil, nil) when absent.
func (l *PostgresLedger) GetTrain(ctx context.Context, key domain.Key) (_ *domain.Train, err error) {
	defer obs.Time(ctx, "ledger.GetTrain")(&err)

	if l.DB == nil {
		return nil, errors.New("get train: DB is nil")
	}

	var (
		capacity  int
		statusInt int
	)
	row := l.DB.QueryRowContext(ctx,
		`SELECT capacity, status FROM trains WHERE id = $1;`, key.String(),
	)
	switch err := row.Scan(&capacity, &statusInt); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, classify("get train", fmt.Errorf("scan: %w", err))
	}

	status, err := domain.TrainStatusFromInt(statusInt)
	if err != nil {
		return nil, fmt.Errorf("get train %q: stored status invalid: %w", key.String(), err)
	}

	return &domain.Train{Key: key, Capacity: capacity, Status: status}, nil
}
