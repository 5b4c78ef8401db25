package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Register a train. With a zero key the system assigns one; with a caller
// key, registration fails with a ConflictError when the key is taken.
func AddTrain(ctx context.Context, ledger ports.TrainRepository, key domain.Key, capacity int, status domain.TrainStatus) (domain.Key, error) {
	if capacity <= 0 {
		return domain.Key{}, domain.ErrValidation("add train: capacity must be positive, got %d", capacity)
	}
	if !status.Valid() {
		return domain.Key{}, domain.ErrValidation("add train: status %d is outside the known set", int(status))
	}

	if key.IsZero() {
		key = domain.NewKey(uuid.NewString())
	}

	err := ledger.CreateTrain(ctx, domain.Train{Key: key, Capacity: capacity, Status: status})
	if err != nil {
		return domain.Key{}, err
	}

	return key, nil
}

// Partially update a train's capacity and/or status. With both fields nil
// this is a true no-op: no statement reaches the ledger and no cache entry
// is invalidated.
func UpdateTrainDetails(
	ctx context.Context,
	ledger ports.TrainRepository,
	views ports.TrainViewCache,
	key domain.Key,
	capacity *int,
	status *domain.TrainStatus,
) error {
	if key.IsZero() {
		return domain.ErrValidation("update train: train key is required")
	}
	if capacity != nil && *capacity <= 0 {
		return domain.ErrValidation("update train: capacity must be positive, got %d", *capacity)
	}
	if status != nil && !status.Valid() {
		return domain.ErrValidation("update train: status %d is outside the known set", int(*status))
	}

	if capacity == nil && status == nil {
		return nil
	}

	if err := ledger.UpdateTrain(ctx, key, capacity, status); err != nil {
		return err
	}

	invalidateView(ctx, views, key)
	return nil
}

// Delete a train by key. Schedules in the graph store that reference the
// train are left dangling; no cascade or reference count guards them.
func DeleteTrain(ctx context.Context, ledger ports.TrainRepository, views ports.TrainViewCache, key domain.Key) error {
	if key.IsZero() {
		return domain.ErrValidation("delete train: train key is required")
	}

	if err := ledger.DeleteTrain(ctx, key); err != nil {
		return err
	}

	invalidateView(ctx, views, key)
	return nil
}

// Read a train's current status; ok is false when the train does not exist.
func GetTrainCurrentStatus(ctx context.Context, ledger ports.TrainRepository, key domain.Key) (domain.TrainStatus, bool, error) {
	if key.IsZero() {
		return 0, false, domain.ErrValidation("train status: train key is required")
	}

	train, err := ledger.GetTrain(ctx, key)
	if err != nil {
		return 0, false, fmt.Errorf("train status: %w", err)
	}
	if train == nil {
		return 0, false, nil
	}

	return train.Status, true, nil
}

// Cache invalidation is best effort: a failed invalidation is logged, not
// surfaced, because the TTL bounds how long a stale view can live.
func invalidateView(ctx context.Context, views ports.TrainViewCache, key domain.Key) {
	if views == nil {
		return
	}
	if err := views.InvalidateTrainView(ctx, key); err != nil {
		log.Printf("invalidate view cache failed: train=%s err=%v", key.String(), err)
	}
}
