package services

import (
	"context"
	"errors"
	"testing"

	"rail-booking-service/internal/adapters/memory"
	"rail-booking-service/internal/domain"
)

func TestSearchConnectionsSortedByTravelTime(t *testing.T) {
	ledger := memory.NewLedger()
	registerStations(t, ledger, "A", "B")
	ctx := context.Background()

	for _, minutes := range []int{10, 20, 5} {
		if err := ConnectStations(ctx, ledger, domain.NewKey("A"), domain.NewKey("B"), minutes); err != nil {
			t.Fatalf("connect A->B (%d min): %v", minutes, err)
		}
	}

	conns, err := SearchConnections(ctx, ledger, domain.ConnectionQuery{
		Start:     domain.NewKey("A"),
		End:       domain.NewKey("B"),
		SortBy:    domain.SortByOverallTravelTime,
		Ascending: true,
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	want := []int{5, 10, 20}
	if len(conns) != len(want) {
		t.Fatalf("got %d connections, want %d", len(conns), len(want))
	}
	for i, minutes := range want {
		if conns[i].TravelTimeMinutes != minutes {
			t.Errorf("conns[%d] = %d min, want %d", i, conns[i].TravelTimeMinutes, minutes)
		}
	}
}

func TestSearchConnectionsDescendingAndLimit(t *testing.T) {
	ledger := memory.NewLedger()
	registerStations(t, ledger, "A", "B")
	ctx := context.Background()

	for _, minutes := range []int{10, 20, 5} {
		if err := ConnectStations(ctx, ledger, domain.NewKey("A"), domain.NewKey("B"), minutes); err != nil {
			t.Fatalf("connect A->B (%d min): %v", minutes, err)
		}
	}

	conns, err := SearchConnections(ctx, ledger, domain.ConnectionQuery{
		Start:     domain.NewKey("A"),
		End:       domain.NewKey("B"),
		Ascending: false,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(conns) != 2 {
		t.Fatalf("got %d connections, want limit of 2", len(conns))
	}
	if conns[0].TravelTimeMinutes != 20 || conns[1].TravelTimeMinutes != 10 {
		t.Errorf("descending order = [%d, %d], want [20, 10]",
			conns[0].TravelTimeMinutes, conns[1].TravelTimeMinutes)
	}
}

func TestSearchConnectionsDefaultLimit(t *testing.T) {
	ledger := memory.NewLedger()
	registerStations(t, ledger, "A", "B")
	ctx := context.Background()

	for minutes := 1; minutes <= 8; minutes++ {
		if err := ConnectStations(ctx, ledger, domain.NewKey("A"), domain.NewKey("B"), minutes); err != nil {
			t.Fatalf("connect: %v", err)
		}
	}

	conns, err := SearchConnections(ctx, ledger, domain.ConnectionQuery{
		Start: domain.NewKey("A"), End: domain.NewKey("B"), Ascending: true,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(conns) != domain.DefaultSearchLimit {
		t.Errorf("got %d connections, want default limit %d", len(conns), domain.DefaultSearchLimit)
	}
}

func TestSearchConnectionsFilterRange(t *testing.T) {
	ledger := memory.NewLedger()
	registerStations(t, ledger, "A", "B")

	badMonth := 13
	_, err := SearchConnections(context.Background(), ledger, domain.ConnectionQuery{
		Start:  domain.NewKey("A"),
		End:    domain.NewKey("B"),
		Filter: domain.TravelTimeFilter{Month: &badMonth},
	})
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	// Unset filter fields must never prune.
	hour := 8
	conns, err := SearchConnections(context.Background(), ledger, domain.ConnectionQuery{
		Start:  domain.NewKey("A"),
		End:    domain.NewKey("B"),
		Filter: domain.TravelTimeFilter{Hour: &hour, DepartureTime: true},
	})
	if err != nil {
		t.Fatalf("search with partial filter: %v", err)
	}
	if len(conns) != 0 {
		t.Errorf("no connections registered, got %d", len(conns))
	}
}
