package services

import (
	"context"
	"errors"
	"testing"

	"rail-booking-service/internal/adapters/memory"
	"rail-booking-service/internal/domain"
)

func buildNetwork(t *testing.T) *memory.Ledger {
	t.Helper()

	ledger := memory.NewLedger()
	registerStations(t, ledger, "A", "B", "C")
	ctx := context.Background()

	if err := ConnectStations(ctx, ledger, domain.NewKey("A"), domain.NewKey("B"), 10); err != nil {
		t.Fatalf("connect A->B: %v", err)
	}
	if err := ConnectStations(ctx, ledger, domain.NewKey("B"), domain.NewKey("C"), 15); err != nil {
		t.Fatalf("connect B->C: %v", err)
	}
	return ledger
}

func TestAddScheduleAlongConnectedChain(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()
	views := memory.NewViewCache()

	in := AddScheduleInput{
		TrainKey:    domain.NewKey("T1"),
		StartHour:   8,
		StartMinute: 0,
		Stops: []domain.ScheduleStop{
			{Station: domain.NewKey("A")},
			{Station: domain.NewKey("B")},
			{Station: domain.NewKey("C")},
		},
		ValidFromDay: 1, ValidFromMonth: 1, ValidFromYear: 2024,
		ValidUntilDay: 31, ValidUntilMonth: 12, ValidUntilYear: 2024,
	}

	if err := AddSchedule(context.Background(), ledger, store, views, in); err != nil {
		t.Fatalf("add schedule: %v", err)
	}

	schedules, err := store.SchedulesByTrain(context.Background(), "T1")
	if err != nil {
		t.Fatalf("schedules by train: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("got %d schedules, want 1", len(schedules))
	}

	s := schedules[0]
	if s.StartTime != "08:00" {
		t.Errorf("start time = %q, want zero-padded %q", s.StartTime, "08:00")
	}
	if s.ValidFrom != "2024-01-01" {
		t.Errorf("valid from = %q, want %q", s.ValidFrom, "2024-01-01")
	}
	if s.ValidUntil != "2024-12-31" {
		t.Errorf("valid until = %q, want %q", s.ValidUntil, "2024-12-31")
	}

	if views.Invalidations != 1 {
		t.Errorf("view invalidations = %d, want 1", views.Invalidations)
	}
}

func TestAddScheduleRejectsUnconnectedPair(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()

	// No direct A->C connection exists, only the A->B->C chain.
	in := AddScheduleInput{
		TrainKey:    domain.NewKey("T2"),
		StartHour:   9,
		StartMinute: 0,
		Stops: []domain.ScheduleStop{
			{Station: domain.NewKey("A")},
			{Station: domain.NewKey("C")},
		},
		ValidFromDay: 1, ValidFromMonth: 1, ValidFromYear: 2024,
		ValidUntilDay: 31, ValidUntilMonth: 12, ValidUntilYear: 2024,
	}

	err := AddSchedule(context.Background(), ledger, store, nil, in)
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	if store.Count() != 0 {
		t.Errorf("rejected schedule wrote %d nodes, want 0", store.Count())
	}
}

func TestAddScheduleFailsOnFirstGap(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()

	// B->A is the gap; the whole operation fails and nothing is written
	// even though A->B and B->C are fine.
	in := AddScheduleInput{
		TrainKey:    domain.NewKey("T3"),
		StartHour:   7,
		StartMinute: 30,
		Stops: []domain.ScheduleStop{
			{Station: domain.NewKey("A")},
			{Station: domain.NewKey("B")},
			{Station: domain.NewKey("A")},
		},
		ValidFromDay: 1, ValidFromMonth: 6, ValidFromYear: 2024,
		ValidUntilDay: 30, ValidUntilMonth: 6, ValidUntilYear: 2024,
	}

	err := AddSchedule(context.Background(), ledger, store, nil, in)
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if store.Count() != 0 {
		t.Errorf("partial schedule written: %d nodes", store.Count())
	}
}

func TestAddSchedulePreconditions(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()
	ctx := context.Background()

	stops := []domain.ScheduleStop{
		{Station: domain.NewKey("A")},
		{Station: domain.NewKey("B")},
	}

	cases := []struct {
		name string
		in   AddScheduleInput
	}{
		{name: "zero train key", in: AddScheduleInput{StartHour: 8, Stops: stops}},
		{name: "single stop", in: AddScheduleInput{
			TrainKey: domain.NewKey("T4"), StartHour: 8,
			Stops: stops[:1],
		}},
		{name: "hour out of range", in: AddScheduleInput{
			TrainKey: domain.NewKey("T4"), StartHour: 24, Stops: stops,
		}},
		{name: "minute out of range", in: AddScheduleInput{
			TrainKey: domain.NewKey("T4"), StartHour: 8, StartMinute: 60, Stops: stops,
		}},
	}

	for _, tc := range cases {
		err := AddSchedule(ctx, ledger, store, nil, tc.in)
		var validation *domain.ValidationError
		if !errors.As(err, &validation) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}

	if store.Count() != 0 {
		t.Errorf("precondition failures wrote %d nodes", store.Count())
	}
}

func TestAddScheduleUnregisteredStopStation(t *testing.T) {
	ledger := buildNetwork(t)
	store := memory.NewScheduleStore()

	in := AddScheduleInput{
		TrainKey:    domain.NewKey("T5"),
		StartHour:   10,
		StartMinute: 15,
		Stops: []domain.ScheduleStop{
			{Station: domain.NewKey("A")},
			{Station: domain.NewKey("X")},
		},
		ValidFromDay: 1, ValidFromMonth: 1, ValidFromYear: 2024,
		ValidUntilDay: 2, ValidUntilMonth: 1, ValidUntilYear: 2024,
	}

	err := AddSchedule(context.Background(), ledger, store, nil, in)
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError for unregistered stop", err)
	}
	if store.Count() != 0 {
		t.Errorf("failed validation wrote %d nodes", store.Count())
	}
}
