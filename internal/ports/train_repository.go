package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: train lifecycle operations against the ledger.
type TrainRepository interface {
	// Register a train under its pre-assigned key. Returns a ConflictError
	// when the key is already taken.
	CreateTrain(ctx context.Context, t domain.Train) error

	// Partially update capacity and/or status. Nil fields are left
	// untouched; callers are expected not to invoke this with both nil.
	UpdateTrain(ctx context.Context, key domain.Key, capacity *int, status *domain.TrainStatus) error

	// Delete a train by key. Deleting an unknown key is not an error.
	DeleteTrain(ctx context.Context, key domain.Key) error

	// Fetch a train by key; (nil, nil) when absent.
	GetTrain(ctx context.Context, key domain.Key) (*domain.Train, error)
}
