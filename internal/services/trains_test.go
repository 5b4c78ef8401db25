package services

import (
	"context"
	"errors"
	"testing"

	"rail-booking-service/internal/adapters/memory"
	"rail-booking-service/internal/domain"
)

func TestAddTrainWithCallerKey(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	key, err := AddTrain(ctx, ledger, domain.NewKey("ICE-1"), 400, domain.StatusNotArrived)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}
	if key.String() != "ICE-1" {
		t.Errorf("key = %q, want caller key preserved", key.String())
	}

	_, err = AddTrain(ctx, ledger, domain.NewKey("ICE-1"), 200, domain.StatusNotArrived)
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("duplicate key: err = %v, want ConflictError", err)
	}
}

func TestAddTrainGeneratesKey(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	first, err := AddTrain(ctx, ledger, domain.Key{}, 120, domain.StatusArrived)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}
	if first.IsZero() {
		t.Fatalf("generated key is zero")
	}

	second, err := AddTrain(ctx, ledger, domain.Key{}, 120, domain.StatusArrived)
	if err != nil {
		t.Fatalf("add second train: %v", err)
	}
	if first == second {
		t.Errorf("generated keys collide: %q", first.String())
	}
}

func TestAddTrainValidation(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	var validation *domain.ValidationError
	if _, err := AddTrain(ctx, ledger, domain.Key{}, 0, domain.StatusArrived); !errors.As(err, &validation) {
		t.Errorf("zero capacity: err = %v, want ValidationError", err)
	}
	if _, err := AddTrain(ctx, ledger, domain.Key{}, 10, domain.TrainStatus(42)); !errors.As(err, &validation) {
		t.Errorf("unknown status: err = %v, want ValidationError", err)
	}
}

func TestUpdateTrainDetailsNoFieldsIsANoOp(t *testing.T) {
	ledger := memory.NewLedger()
	views := memory.NewViewCache()
	ctx := context.Background()

	key, err := AddTrain(ctx, ledger, domain.NewKey("R-1"), 90, domain.StatusNotArrived)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}
	writesBefore := ledger.TrainWrites

	if err := UpdateTrainDetails(ctx, ledger, views, key, nil, nil); err != nil {
		t.Fatalf("no-op update: %v", err)
	}

	if ledger.TrainWrites != writesBefore {
		t.Errorf("no-op update issued %d writes", ledger.TrainWrites-writesBefore)
	}
	if views.Invalidations != 0 {
		t.Errorf("no-op update invalidated the view cache")
	}

	train, err := ledger.GetTrain(ctx, key)
	if err != nil || train == nil {
		t.Fatalf("get train after no-op: train=%v err=%v", train, err)
	}
	if train.Capacity != 90 || train.Status != domain.StatusNotArrived {
		t.Errorf("no-op update changed the row: %+v", train)
	}
}

func TestUpdateTrainDetailsPartialFields(t *testing.T) {
	ledger := memory.NewLedger()
	views := memory.NewViewCache()
	ctx := context.Background()

	key, err := AddTrain(ctx, ledger, domain.NewKey("R-2"), 90, domain.StatusNotArrived)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}

	status := domain.StatusDelayed
	if err := UpdateTrainDetails(ctx, ledger, views, key, nil, &status); err != nil {
		t.Fatalf("update status: %v", err)
	}

	train, err := ledger.GetTrain(ctx, key)
	if err != nil || train == nil {
		t.Fatalf("get train: train=%v err=%v", train, err)
	}
	if train.Status != domain.StatusDelayed {
		t.Errorf("status = %v, want %v", train.Status, domain.StatusDelayed)
	}
	if train.Capacity != 90 {
		t.Errorf("capacity changed by status-only update: %d", train.Capacity)
	}
	if views.Invalidations != 1 {
		t.Errorf("view invalidations = %d, want 1", views.Invalidations)
	}
}

func TestGetTrainCurrentStatus(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()

	key, err := AddTrain(ctx, ledger, domain.NewKey("R-3"), 60, domain.StatusInTransit)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}

	status, ok, err := GetTrainCurrentStatus(ctx, ledger, key)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !ok || status != domain.StatusInTransit {
		t.Errorf("status = (%v, %v), want (IN_TRANSIT, true)", status, ok)
	}

	_, ok, err = GetTrainCurrentStatus(ctx, ledger, domain.NewKey("missing"))
	if err != nil {
		t.Fatalf("status of missing train: %v", err)
	}
	if ok {
		t.Errorf("missing train reported present")
	}
}

func TestDeleteTrainLeavesSchedulesDangling(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()
	views := memory.NewViewCache()
	ctx := context.Background()

	key, err := AddTrain(ctx, ledger, domain.NewKey("T9"), 100, domain.StatusNotArrived)
	if err != nil {
		t.Fatalf("add train: %v", err)
	}

	in := AddScheduleInput{
		TrainKey:    key,
		StartHour:   6,
		StartMinute: 45,
		Stops: []domain.ScheduleStop{
			{Station: domain.NewKey("A")},
			{Station: domain.NewKey("B")},
		},
		ValidFromDay: 1, ValidFromMonth: 1, ValidFromYear: 2024,
		ValidUntilDay: 31, ValidUntilMonth: 1, ValidUntilYear: 2024,
	}
	if err := AddSchedule(ctx, ledger, store, views, in); err != nil {
		t.Fatalf("add schedule: %v", err)
	}

	if err := DeleteTrain(ctx, ledger, views, key); err != nil {
		t.Fatalf("delete train: %v", err)
	}

	// No cascade: the schedule node survives its train.
	schedules, err := store.SchedulesByTrain(ctx, key.String())
	if err != nil {
		t.Fatalf("schedules by train: %v", err)
	}
	if len(schedules) != 1 {
		t.Errorf("got %d schedules after train delete, want 1 dangling", len(schedules))
	}
}
