package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: direct-connection registration and search against the ledger.
type ConnectionRepository interface {
	// Register a directed connection between two stations. Both endpoints
	// must already exist (checked with a single combined count inside the
	// insert transaction); otherwise a ValidationError is returned and
	// nothing is written.
	CreateConnection(ctx context.Context, start, end domain.Key, travelTimeMinutes int) error

	// Find direct connections matching the query. Both stations must exist
	// (single combined count, one round trip); otherwise a NotFoundError is
	// returned. Results are ordered and truncated per the query.
	SearchConnections(ctx context.Context, q domain.ConnectionQuery) ([]domain.Connection, error)
}
