package handlers

import (
	"net/http"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// UserHandler exposes user registration, removal, and purchase history.
type UserHandler struct {
	Ledger    ports.UserRepository
	Purchases ports.PurchaseHistoryRepository
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if err := services.AddUser(r.Context(), h.Ledger, req.Email, req.Details); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	if err := services.DeleteUser(r.Context(), h.Ledger, email); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Ledger.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		res.Users = append(res.Users, dto.UserResponse{ID: u.ID, Email: u.Email, Details: u.Details})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *UserHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	var req dto.RecordPurchaseRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if err := services.RecordPurchase(r.Context(), h.Purchases, email, req.TravelDate, req.Details); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// History returns the user's purchase history, most recent travel date first.
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	records, err := h.Purchases.PurchaseHistory(r.Context(), email)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.PurchaseHistoryResponse{
		Records: make([]dto.PurchaseRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Records = append(res.Records, dto.PurchaseRecordResponse{
			TravelDate: rec.TravelDate,
			Details:    rec.Details,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
