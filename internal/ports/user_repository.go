package ports

import (
	"context"

	"rail-booking-service/internal/domain"
)

// Port: user records and purchase history in the ledger.
type UserRepository interface {
	// Register a user by unique email. Returns a ConflictError when the
	// email is already registered.
	CreateUser(ctx context.Context, email, details string) error

	// Delete a user by email. Deleting an unknown email is not an error.
	DeleteUser(ctx context.Context, email string) error

	// Fetch a user by email; (nil, nil) when absent.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// List all registered users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Port: append-only purchase history per user email.
type PurchaseHistoryRepository interface {
	// Append one history entry.
	RecordPurchase(ctx context.Context, rec domain.PurchaseRecord) error

	// List a user's history in descending travel-date order.
	PurchaseHistory(ctx context.Context, email string) ([]domain.PurchaseRecord, error)
}
