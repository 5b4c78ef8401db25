package services

import (
	"context"
	"strings"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Buy one ticket over a connection for the user with the given email.
//
// The user must exist; the ledger resolves the email and inserts the ticket
// row inside one transaction, so a failed lookup writes nothing. No check is
// made against the train's capacity: only a reservation flag is recorded.
func BuyTicket(ctx context.Context, ledger ports.TicketRepository, userEmail string, connectionID int64, reserveSeats bool) error {
	if strings.TrimSpace(userEmail) == "" {
		return domain.ErrValidation("buy ticket: user email is required")
	}
	if connectionID <= 0 {
		return domain.ErrValidation("buy ticket: connection id %d is not valid", connectionID)
	}

	return ledger.CreateTicket(ctx, userEmail, connectionID, reserveSeats)
}
