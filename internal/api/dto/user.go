package dto

import "time"

type CreateUserRequest struct {
	Email   string `json:"email"`
	Details string `json:"details"`
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Details string `json:"details"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

type BuyTicketRequest struct {
	UserEmail    string `json:"user_email"`
	ConnectionID int64  `json:"connection_id"`
	ReserveSeats bool   `json:"reserve_seats"`
}

type RecordPurchaseRequest struct {
	TravelDate time.Time `json:"travel_date"`
	Details    string    `json:"details"`
}

type PurchaseRecordResponse struct {
	TravelDate time.Time `json:"travel_date"`
	Details    string    `json:"details"`
}

type PurchaseHistoryResponse struct {
	Records []PurchaseRecordResponse `json:"records"`
}
