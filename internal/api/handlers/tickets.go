package handlers

import (
	"net/http"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// TicketHandler exposes ticket purchase.
type TicketHandler struct {
	Ledger ports.TicketRepository
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BuyTicketRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	err := services.BuyTicket(r.Context(), h.Ledger, req.UserEmail, req.ConnectionID, req.ReserveSeats)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
