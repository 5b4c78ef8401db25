package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"rail-booking-service/internal/api/dto"
	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/ports"
	"rail-booking-service/internal/services"
)

// ConnectionHandler exposes connection registration and direct-connection
// search.
type ConnectionHandler struct {
	Ledger ports.ConnectionRepository
}

func (h *ConnectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConnectionRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	err := services.ConnectStations(
		r.Context(), h.Ledger,
		domain.NewKey(strings.TrimSpace(req.Start)),
		domain.NewKey(strings.TrimSpace(req.End)),
		req.TravelTimeMinutes,
	)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Search finds direct connections between ?from= and ?to=, sorted by travel
// time. Optional refinements: asc, limit, and the time-window fields day,
// month, year, hour, minute, departure.
func (h *ConnectionHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := domain.ConnectionQuery{
		Start:     domain.NewKey(strings.TrimSpace(query.Get("from"))),
		End:       domain.NewKey(strings.TrimSpace(query.Get("to"))),
		SortBy:    domain.SortByOverallTravelTime,
		Ascending: true,
	}

	if v := query.Get("asc"); v != "" {
		asc, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "asc must be a boolean")
			return
		}
		q.Ascending = asc
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		q.Limit = limit
	}

	for name, field := range map[string]**int{
		"day":    &q.Filter.Day,
		"month":  &q.Filter.Month,
		"year":   &q.Filter.Year,
		"hour":   &q.Filter.Hour,
		"minute": &q.Filter.Minute,
	} {
		v := query.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, name+" must be an integer")
			return
		}
		*field = &n
	}

	if v := query.Get("departure"); v != "" {
		departure, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "departure must be a boolean")
			return
		}
		q.Filter.DepartureTime = departure
	}

	connections, err := services.SearchConnections(r.Context(), h.Ledger, q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.SearchConnectionsResponse{
		Connections: make([]dto.ConnectionResponse, 0, len(connections)),
	}
	for _, c := range connections {
		res.Connections = append(res.Connections, dto.ConnectionResponse{
			ID:                c.ID,
			Start:             c.Start.String(),
			End:               c.End.String(),
			TravelTimeMinutes: c.TravelTimeMinutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
