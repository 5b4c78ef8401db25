package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: optional read-through cache for composite train views. A nil-safe
// no-op implementation is acceptable; correctness never depends on it.
type TrainViewCache interface {
	// Fetch a cached view; ok is false on a miss.
	GetTrainView(ctx context.Context, key domain.Key) (view *domain.TrainView, ok bool, err error)

	// Store a view under its train key.
	PutTrainView(ctx context.Context, view *domain.TrainView) error

	// Drop any cached view for the key. Called after train or schedule
	// writes so stale composites are never served.
	InvalidateTrainView(ctx context.Context, key domain.Key) error
}
