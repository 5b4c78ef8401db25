package services

import (
	"context"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Search direct connections between two stations.
//
// Both stations must already be registered; the ledger verifies that with a
// single combined existence count and reports a NotFoundError otherwise.
// Only direct edges are returned; multi-hop itineraries are out of scope.
// Each call runs a fresh query.
func SearchConnections(ctx context.Context, ledger ports.ConnectionRepository, q domain.ConnectionQuery) ([]domain.Connection, error) {
	if q.Start.IsZero() || q.End.IsZero() {
		return nil, domain.ErrValidation("search connections: both station keys are required")
	}

	if err := validateTravelTimeFilter(q.Filter); err != nil {
		return nil, err
	}

	if q.Limit <= 0 {
		q.Limit = domain.DefaultSearchLimit
	}

	return ledger.SearchConnections(ctx, q)
}

// Filter sub-fields are optional refinement predicates; only fields that are
// actually set get range-checked, and unset fields never prune candidates.
func validateTravelTimeFilter(f domain.TravelTimeFilter) error {
	if f.Day != nil && (*f.Day < 1 || *f.Day > 31) {
		return domain.ErrValidation("search connections: day %d out of range", *f.Day)
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return domain.ErrValidation("search connections: month %d out of range", *f.Month)
	}
	if f.Year != nil && *f.Year < 0 {
		return domain.ErrValidation("search connections: year %d out of range", *f.Year)
	}
	if f.Hour != nil && (*f.Hour < 0 || *f.Hour > 23) {
		return domain.ErrValidation("search connections: hour %d out of range", *f.Hour)
	}
	if f.Minute != nil && (*f.Minute < 0 || *f.Minute > 59) {
		return domain.ErrValidation("search connections: minute %d out of range", *f.Minute)
	}
	return nil
}
