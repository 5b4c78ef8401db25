package handlers

import (
	"net/http"
	"strings"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// StationHandler exposes station registration.
type StationHandler struct {
	Ledger ports.StationRepository
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStationRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Key) == "" {
		writeError(w, r, http.StatusBadRequest, "key is required")
		return
	}

	key, err := services.AddStation(r.Context(), h.Ledger, domain.NewKey(req.Key), req.Details)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.KeyResponse{Key: key.String()})
}
