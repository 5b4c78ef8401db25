package repositories

import (
	"context"
	"errors"
	"fmt"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Register a directed connection. Endpoint existence is checked with a single
// combined count inside the insert transaction: count < 2 means at least one
// endpoint is unregistered and nothing is written.
func (l *PostgresLedger) CreateConnection(ctx context.Context, start, end domain.Key, travelTimeMinutes int) (err error) {
	defer obs.Time(ctx, "ledger.CreateConnection")(&err)

	if l.DB == nil {
		return errors.New("connect stations: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify("connect stations", fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	row := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stations WHERE id IN ($1, $2);`,
		start.String(), end.String(),
	)
	if err := row.Scan(&count); err != nil {
		return classify("connect stations", fmt.Errorf("count stations: %w", err))
	}
	if count < 2 {
		return domain.ErrValidation("one or both stations do not exist")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO connections (start_station, end_station, travel_time) VALUES ($1, $2, $3);`,
		start.String(), end.String(), travelTimeMinutes,
	)
	if err != nil {
		return classify("connect stations", fmt.Errorf("insert: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classify("connect stations", fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Find direct connections from q.Start to q.End. Station existence is
// verified with one combined count before the search; a missing endpoint is a
// NotFoundError, not an empty result.
func (l *PostgresLedger) SearchConnections(ctx context.Context, q domain.ConnectionQuery) (_ []domain.Connection, err error) {
	defer obs.Time(ctx, "ledger.SearchConnections")(&err)

	if l.DB == nil {
		return nil, errors.New("search connections: DB is nil")
	}

	var count int
	row := l.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stations WHERE id IN ($1, $2);`,
		q.Start.String(), q.End.String(),
	)
	if err := row.Scan(&count); err != nil {
		return nil, classify("search connections", fmt.Errorf("count stations: %w", err))
	}
	if count < 2 {
		return nil, domain.ErrNotFound("one or both stations do not exist")
	}

	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	// SortByOverallTravelTime is the only criterion; the direction is the
	// only piece assembled into the statement and never caller-supplied text.
	query := fmt.Sprintf(`
	SELECT id, start_station, end_station, travel_time
	FROM connections
	WHERE start_station = $1 AND end_station = $2
	ORDER BY travel_time %s
	LIMIT $3;
	`, direction)

	rows, err := l.DB.QueryContext(ctx, query, q.Start.String(), q.End.String(), q.Limit)
	if err != nil {
		return nil, classify("search connections", fmt.Errorf("query connections: %w", err))
	}
	defer rows.Close()

	connections := make([]domain.Connection, 0, q.Limit)
	for rows.Next() {
		var (
			id         int64
			start, end string
			travelTime int
		)
		if err := rows.Scan(&id, &start, &end, &travelTime); err != nil {
			return nil, classify("search connections", fmt.Errorf("scan row: %w", err))
		}
		connections = append(connections, domain.Connection{
			ID:                id,
			Start:             domain.NewKey(start),
			End:               domain.NewKey(end),
			TravelTimeMinutes: travelTime,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify("search connections", fmt.Errorf("row iteration: %w", err))
	}

	return connections, nil
}
