package services

import (
	"context"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Register a station. Fails with a ConflictError when the key is taken.
func AddStation(ctx context.Context, ledger ports.StationRepository, key domain.Key, details string) (domain.Key, error) {
	if key.IsZero() {
		return domain.Key{}, domain.ErrValidation("add station: station key is required")
	}

	if err := ledger.CreateStation(ctx, domain.Station{Key: key, Details: details}); err != nil {
		return domain.Key{}, err
	}

	return key, nil
}

// Register a directed connection between two existing stations. The ledger
// checks both endpoints with one combined count inside the insert
// transaction; a failed insert rolls back and the error propagates.
func ConnectStations(ctx context.Context, ledger ports.ConnectionRepository, start, end domain.Key, travelTimeMinutes int) error {
	if start.IsZero() || end.IsZero() {
		return domain.ErrValidation("connect stations: both station keys are required")
	}
	if travelTimeMinutes <= 0 {
		return domain.ErrValidation("connect stations: travel time must be positive, got %d", travelTimeMinutes)
	}

	return ledger.CreateConnection(ctx, start, end, travelTimeMinutes)
}
