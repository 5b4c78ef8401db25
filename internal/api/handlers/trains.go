package handlers

import (
	"net/http"
	"strings"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// TrainHandler exposes the train lifecycle and the composite train view.
type TrainHandler struct {
	Ledger    ports.TrainRepository
	Schedules ports.ScheduleStore
	Views     ports.TrainViewCache
}

func (h *TrainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTrainRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	status, err := domain.ParseTrainStatus(req.Status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	key, err := services.AddTrain(r.Context(), h.Ledger, domain.NewKey(strings.TrimSpace(req.Key)), req.Capacity, status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.KeyResponse{Key: key.String()})
}

// Get returns the composite view: the ledger row plus every schedule in the
// graph store referencing this train.
func (h *TrainHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := domain.NewKey(r.PathValue("key"))

	view, err := services.GetTrain(r.Context(), h.Ledger, h.Schedules, h.Views, key)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if view == nil {
		writeError(w, r, http.StatusNotFound, "train does not exist")
		return
	}

	res := dto.TrainViewResponse{
		Key:       view.Train.Key.String(),
		Capacity:  view.Train.Capacity,
		Status:    view.Train.Status.String(),
		Schedules: make([]dto.ScheduleResponse, 0, len(view.Schedules)),
	}
	for _, s := range view.Schedules {
		res.Schedules = append(res.Schedules, dto.ScheduleResponse{
			TrainKey:   s.TrainKey,
			StartTime:  s.StartTime,
			ValidFrom:  s.ValidFrom,
			ValidUntil: s.ValidUntil,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TrainHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := domain.NewKey(r.PathValue("key"))

	var req dto.UpdateTrainRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	var status *domain.TrainStatus
	if req.Status != nil {
		parsed, err := domain.ParseTrainStatus(*req.Status)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		status = &parsed
	}

	if err := services.UpdateTrainDetails(r.Context(), h.Ledger, h.Views, key, req.Capacity, status); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := domain.NewKey(r.PathValue("key"))

	if err := services.DeleteTrain(r.Context(), h.Ledger, h.Views, key); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrainHandler) Status(w http.ResponseWriter, r *http.Request) {
	key := domain.NewKey(r.PathValue("key"))

	status, ok, err := services.GetTrainCurrentStatus(r.Context(), h.Ledger, key)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "train does not exist")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TrainStatusResponse{Status: status.String()})
}
