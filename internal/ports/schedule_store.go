package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: the graph store owning schedule records. Writes here are not covered
// by any ledger transaction; callers validate against the ledger first and
// accept the validate-then-write gap.
type ScheduleStore interface {
	// Persist one schedule node.
	CreateSchedule(ctx context.Context, s domain.Schedule) error

	// List schedules whose train reference equals the given canonical key,
	// ordered by (start time, valid-from).
	SchedulesByTrain(ctx context.Context, trainKey string) ([]domain.Schedule, error)

	// List every schedule node. Utility read for operators.
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
}
