package handlers

import (
	"net/http"
	"strings"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// ScheduleHandler exposes schedule registration and the operator listing.
type ScheduleHandler struct {
	Ledger ports.ConnectionRepository
	Store  ports.ScheduleStore
	Views  ports.TrainViewCache
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	stops := make([]domain.ScheduleStop, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, domain.ScheduleStop{
			Station:     domain.NewKey(strings.TrimSpace(s.Station)),
			WaitMinutes: s.WaitMinutes,
		})
	}

	in := services.AddScheduleInput{
		TrainKey:        domain.NewKey(strings.TrimSpace(req.TrainKey)),
		StartHour:       req.StartHour,
		StartMinute:     req.StartMinute,
		Stops:           stops,
		ValidFromDay:    req.ValidFrom.Day,
		ValidFromMonth:  req.ValidFrom.Month,
		ValidFromYear:   req.ValidFrom.Year,
		ValidUntilDay:   req.ValidUntil.Day,
		ValidUntilMonth: req.ValidUntil.Month,
		ValidUntilYear:  req.ValidUntil.Year,
	}

	if err := services.AddSchedule(r.Context(), h.Ledger, h.Store, h.Views, in); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Store.ListSchedules(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListSchedulesResponse{
		Schedules: make([]dto.ScheduleResponse, 0, len(schedules)),
	}
	for _, s := range schedules {
		res.Schedules = append(res.Schedules, dto.ScheduleResponse{
			TrainKey:   s.TrainKey,
			StartTime:  s.StartTime,
			ValidFrom:  s.ValidFrom,
			ValidUntil: s.ValidUntil,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
