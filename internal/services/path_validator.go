package services

import (
	"context"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Confirm that every consecutive stop pair is backed by at least one
// registered direct connection. The check fails fast on the first gap and
// names the offending pair; a stop naming an unregistered station surfaces
// as the search's NotFoundError.
func ValidateStopChain(ctx context.Context, ledger ports.ConnectionRepository, stops []domain.ScheduleStop) error {
	for i := 0; i < len(stops)-1; i++ {
		start := stops[i].Station
		end := stops[i+1].Station

		connections, err := SearchConnections(ctx, ledger, domain.ConnectionQuery{
			Start:     start,
			End:       end,
			SortBy:    domain.SortByOverallTravelTime,
			Ascending: true,
		})
		if err != nil {
			return err
		}

		if len(connections) == 0 {
			return domain.ErrValidation(
				"stops %q and %q are not connected", start.String(), end.String(),
			)
		}
	}

	return nil
}
