package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: station registration and existence checks against the ledger.
type StationRepository interface {
	// Register a new station. Returns a ConflictError when the key is
	// already taken; the check and insert share one transaction.
	CreateStation(ctx context.Context, st domain.Station) error
}
