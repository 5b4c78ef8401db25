package repositories

import "database/sql"

// PostgresLedger is the transactional store of record for stations,
// connections, trains, users, tickets, and purchase history. Every
// check-then-write runs inside one transaction so concurrent callers cannot
// both pass a check and both write.
type PostgresLedger struct {
	DB *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{DB: db}
}
