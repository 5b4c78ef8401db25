package services

import (
	"context"
	"strings"
	"time"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
)

// Register a user by email. Fails with a ConflictError when the email is
// already registered.
func AddUser(ctx context.Context, ledger ports.UserRepository, email, details string) error {
	if !strings.Contains(email, "@") {
		return domain.ErrValidation("add user: %q is not a valid email", email)
	}

	return ledger.CreateUser(ctx, email, details)
}

// Delete a user by email.
func DeleteUser(ctx context.Context, ledger ports.UserRepository, email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrValidation("delete user: email is required")
	}

	return ledger.DeleteUser(ctx, email)
}

// Append one purchase-history entry for a user.
func RecordPurchase(ctx context.Context, ledger ports.PurchaseHistoryRepository, email string, travelDate time.Time, details string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrValidation("record purchase: email is required")
	}
	if travelDate.IsZero() {
		return domain.ErrValidation("record purchase: travel date is required")
	}

	return ledger.RecordPurchase(ctx, domain.PurchaseRecord{
		UserEmail:  email,
		TravelDate: travelDate,
		Details:    details,
	})
}
