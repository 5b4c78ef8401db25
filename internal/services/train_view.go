package services

import (
	"context"
	"fmt"
	"log"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Build the composite train view: the ledger row joined with every graph
// schedule whose train reference equals the key's canonical string form.
//
// An absent train returns (nil, nil) without touching the graph store. The
// cache is optional; a cache read failure falls through to the stores and a
// cache write failure is logged, never surfaced.
func GetTrain(
	ctx context.Context,
	ledger ports.TrainRepository,
	store ports.ScheduleStore,
	views ports.TrainViewCache,
	key domain.Key,
) (*domain.TrainView, error) {
	if key.IsZero() {
		return nil, domain.ErrValidation("get train: train key is required")
	}

	if views != nil {
		view, ok, err := views.GetTrainView(ctx, key)
		if err != nil {
			log.Printf("view cache read failed: train=%s err=%v", key.String(), err)
		} else if ok {
			return view, nil
		}
	}

	train, err := ledger.GetTrain(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get train: %w", err)
	}
	if train == nil {
		return nil, nil
	}

	schedules, err := store.SchedulesByTrain(ctx, key.String())
	if err != nil {
		return nil, fmt.Errorf("get train: %w", err)
	}

	view := &domain.TrainView{Train: *train, Schedules: schedules}

	if views != nil {
		if err := views.PutTrainView(ctx, view); err != nil {
			log.Printf("view cache write failed: train=%s err=%v", key.String(), err)
		}
	}

	return view, nil
}
