package services

import (
	"context"
	"fmt"
	"log"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// AddScheduleInput carries one proposed schedule: a train, a departure time
// of day, an ordered stop sequence, and a validity window.
type AddScheduleInput struct {
	TrainKey    domain.Key
	StartHour   int
	StartMinute int
	Stops       []domain.ScheduleStop

	ValidFromDay, ValidFromMonth, ValidFromYear    int
	ValidUntilDay, ValidUntilMonth, ValidUntilYear int
}

// Register a schedule in the graph store after validating the stop chain
// against the ledger.
//
// The ledger reads and the graph write are not one transaction: a connection
// deleted between validation and the write leaves a schedule the ledger no
// longer supports. That validate-then-write gap is the documented consistency
// model for the two stores, not an oversight to paper over.
func AddSchedule(
	ctx context.Context,
	ledger ports.ConnectionRepository,
	store ports.ScheduleStore,
	views ports.TrainViewCache,
	in AddScheduleInput,
) error {
	if in.TrainKey.IsZero() {
		return domain.ErrValidation("add schedule: train key is required")
	}
	if len(in.Stops) < 2 {
		return domain.ErrValidation("add schedule: schedule must have at least two stops")
	}
	if in.StartHour < 0 || in.StartHour > 23 {
		return domain.ErrValidation("add schedule: start hour %d out of range", in.StartHour)
	}
	if in.StartMinute < 0 || in.StartMinute > 59 {
		return domain.ErrValidation("add schedule: start minute %d out of range", in.StartMinute)
	}

	if err := ValidateStopChain(ctx, ledger, in.Stops); err != nil {
		return err
	}

	schedule := domain.Schedule{
		TrainKey:   in.TrainKey.String(),
		StartTime:  fmt.Sprintf("%02d:%02d", in.StartHour, in.StartMinute),
		ValidFrom:  fmt.Sprintf("%04d-%02d-%02d", in.ValidFromYear, in.ValidFromMonth, in.ValidFromDay),
		ValidUntil: fmt.Sprintf("%04d-%02d-%02d", in.ValidUntilYear, in.ValidUntilMonth, in.ValidUntilDay),
	}

	if err := store.CreateSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("add schedule: %w", err)
	}

	// The composite view for this train changed; drop any cached copy.
	if views != nil {
		if err := views.InvalidateTrainView(ctx, in.TrainKey); err != nil {
			log.Printf("invalidate view cache failed: train=%s err=%v", in.TrainKey.String(), err)
		}
	}

	return nil
}
