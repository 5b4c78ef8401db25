package ports

import "context"

// Port: ticket purchase against the ledger.
type TicketRepository interface {
	// Resolve the user by email and insert one ticket row referencing the
	// user and connection, committed as a single transaction. Returns a
	// NotFoundError when no user with the email exists; in that case
	// nothing is written.
	CreateTicket(ctx context.Context, userEmail string, connectionID int64, reserveSeats bool) error
}
