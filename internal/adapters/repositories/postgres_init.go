package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the ledger schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		details TEXT
	);
	`

	createTrainsQuery := `
	CREATE TABLE IF NOT EXISTS trains (
		id TEXT PRIMARY KEY,
		capacity INT NOT NULL CHECK (capacity > 0),
		status INT NOT NULL
	);
	`

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		id TEXT PRIMARY KEY,
		details TEXT
	);
	`

	createConnectionsQuery := `
	CREATE TABLE IF NOT EXISTS connections (
		id BIGSERIAL PRIMARY KEY,
		start_station TEXT NOT NULL REFERENCES stations(id),
		end_station TEXT NOT NULL REFERENCES stations(id),
		travel_time INT NOT NULL CHECK (travel_time > 0)
	);
	`

	createTicketsQuery := `
	CREATE TABLE IF NOT EXISTS tickets (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		connection_id BIGINT NOT NULL,
		reserved_seats BOOLEAN NOT NULL
	);
	`

	createPurchaseHistoryQuery := `
	CREATE TABLE IF NOT EXISTS purchase_history (
		id BIGSERIAL PRIMARY KEY,
		user_email TEXT NOT NULL,
		travel_date TIMESTAMPTZ,
		details TEXT
	);
	`

	createConnectionsIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_connections_start_end
	ON connections(start_station, end_station);
	`

	createHistoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_purchase_history_user_date
	ON purchase_history(user_email, travel_date DESC);
	`

	statements := []string{
		createUsersQuery,
		createTrainsQuery,
		createStationsQuery,
		createConnectionsQuery,
		createTicketsQuery,
		createPurchaseHistoryQuery,
		createConnectionsIndexQuery,
		createHistoryIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StationSeed struct {
	ID      string `json:"id"`
	Details string `json:"details"`
}

type ConnectionSeed struct {
	StartStation      string `json:"start_station"`
	EndStation        string `json:"end_station"`
	TravelTimeMinutes int    `json:"travel_time_minutes"`
}

type NetworkSeed struct {
	Stations    []StationSeed    `json:"stations"`
	Connections []ConnectionSeed `json:"connections"`
}

// Populate the ledger with a rail network from a JSON file. Stations are
// upserted; connections are re-inserted only when the exact edge is absent,
// so reseeding does not duplicate the network.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed network: read %q: %w", jsonPath, err)
	}

	var seed NetworkSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed network: parse json: %w", err)
	}

	for i, st := range seed.Stations {
		if strings.TrimSpace(st.ID) == "" {
			return fmt.Errorf("seed network: station at index %d: id cannot be empty", i+1)
		}
	}
	for i, c := range seed.Connections {
		if strings.TrimSpace(c.StartStation) == "" || strings.TrimSpace(c.EndStation) == "" {
			return fmt.Errorf("seed network: connection at index %d: endpoints cannot be empty", i+1)
		}
		if c.TravelTimeMinutes <= 0 {
			return fmt.Errorf("seed network: connection at index %d: travel time must be positive, got %d", i+1, c.TravelTimeMinutes)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stationStmt, err := tx.Prepare(`
	INSERT INTO stations (id, details)
	VALUES ($1, $2)
	ON CONFLICT (id) DO UPDATE SET details = EXCLUDED.details;
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare station insert: %w", err)
	}
	defer stationStmt.Close()

	for _, st := range seed.Stations {
		if _, err := stationStmt.Exec(st.ID, st.Details); err != nil {
			return fmt.Errorf("seed network: insert station id=%q: %w", st.ID, err)
		}
	}

	connStmt, err := tx.Prepare(`
	INSERT INTO connections (start_station, end_station, travel_time)
	SELECT $1, $2, $3
	WHERE NOT EXISTS (
		SELECT 1 FROM connections
		WHERE start_station = $1 AND end_station = $2 AND travel_time = $3
	);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare connection insert: %w", err)
	}
	defer connStmt.Close()

	for _, c := range seed.Connections {
		if _, err := connStmt.Exec(c.StartStation, c.EndStation, c.TravelTimeMinutes); err != nil {
			return fmt.Errorf("seed network: insert connection %q->%q: %w", c.StartStation, c.EndStation, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}
