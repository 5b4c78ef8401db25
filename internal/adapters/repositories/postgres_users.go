package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Register a user by unique email. The uniqueness check and the insert share
// one transaction.
func (l *PostgresLedger) CreateUser(ctx context.Context, email, details string) (err error) {
	defer obs.Time(ctx, "ledger.CreateUser")(&err)

	if l.DB == nil {
		return errors.New("create user: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("create user", fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var existing int64
	row := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1;`, email)
	switch err := row.Scan(&existing); {
	case err == nil:
		return domain.ErrConflict("user %q already exists", email)
	case !errors.Is(err, sql.ErrNoRows):
		return classify("create user", fmt.Errorf("check existing: %w", err))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (email, details) VALUES ($1, $2);`, email, details,
	)
	if err != nil {
		return classify("create user", fmt.Errorf("insert: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classify("create user", fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Delete a user by email.
func (l *PostgresLedger) DeleteUser(ctx context.Context, email string) (err error) {
	defer obs.Time(ctx, "ledger.DeleteUser")(&err)

	if l.DB == nil {
		return errors.New("delete user: DB is nil")
	}

	if _, err := l.DB.ExecContext(ctx, `DELETE FROM users WHERE email = $1;`, email); err != nil {
		return classify("delete user", fmt.Errorf("exec: %w", err))
	}

	return nil
}

// Fetch a user by email; (nil, nil) when absent.
func (l *PostgresLedger) GetUserByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	defer obs.Time(ctx, "ledger.GetUserByEmail")(&err)

	if l.DB == nil {
		return nil, errors.New("get user: DB is nil")
	}

	var u domain.User
	row := l.DB.QueryRowContext(ctx,
		`SELECT id, email, details FROM users WHERE email = $1;`, email,
	)
	switch err := row.Scan(&u.ID, &u.Email, &u.Details); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, classify("get user", fmt.Errorf("scan: %w", err))
	}

	return &u, nil
}

// List all users ordered by id.
func (l *PostgresLedger) ListUsers(ctx context.Context) (_ []domain.User, err error) {
	defer obs.Time(ctx, "ledger.ListUsers")(&err)

	if l.DB == nil {
		return nil, errors.New("list users: DB is nil")
	}

	rows, err := l.DB.QueryContext(ctx, `SELECT id, email, details FROM users ORDER BY id;`)
	if err != nil {
		return nil, classify("list users", fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	users := make([]domain.User, 0, 64)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Details); err != nil {
			return nil, classify("list users", fmt.Errorf("scan row: %w", err))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", fmt.Errorf("row iteration: %w", err))
	}

	return users, nil
}
