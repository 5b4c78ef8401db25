package domain

import "time"

// User is identified by a unique email. Its existence is a precondition
// consulted before any ticket is sold.
type User struct {
	ID      int64
	Email   string
	Details string
}

// Ticket records one purchase of travel over a connection for a user.
// ReservedSeats is a flag only; no concrete seat inventory is tracked.
type Ticket struct {
	ID            int64
	UserID        int64
	ConnectionID  int64
	ReservedSeats bool
}

// PurchaseRecord is an append-only entry in a user's purchase history.
type PurchaseRecord struct {
	ID         int64
	UserEmail  string
	TravelDate time.Time
	Details    string
}
