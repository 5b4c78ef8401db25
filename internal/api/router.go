package api

import (
	"net/http"

	"rail-booking-service/internal/api/handlers"
	"rail-booking-service/internal/ports"
)

// Stores bundles the ports the HTTP surface needs. Views may be nil when no
// cache is configured.
type Stores struct {
	Stations    ports.StationRepository
	Connections ports.ConnectionRepository
	Trains      ports.TrainRepository
	Users       ports.UserRepository
	Tickets     ports.TicketRepository
	Purchases   ports.PurchaseHistoryRepository
	Schedules   ports.ScheduleStore
	Views       ports.TrainViewCache
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(s Stores) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Ledger: s.Stations}
	connectionHandler := &handlers.ConnectionHandler{Ledger: s.Connections}
	trainHandler := &handlers.TrainHandler{
		Ledger:    s.Trains,
		Schedules: s.Schedules,
		Views:     s.Views,
	}
	scheduleHandler := &handlers.ScheduleHandler{
		Ledger: s.Connections,
		Store:  s.Schedules,
		Views:  s.Views,
	}
	ticketHandler := &handlers.TicketHandler{Ledger: s.Tickets}
	userHandler := &handlers.UserHandler{Ledger: s.Users, Purchases: s.Purchases}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /stations", stationHandler.Create)
	mux.HandleFunc("POST /connections", connectionHandler.Create)
	mux.HandleFunc("GET /connections/search", connectionHandler.Search)

	mux.HandleFunc("POST /trains", trainHandler.Create)
	mux.HandleFunc("GET /trains/{key}", trainHandler.Get)
	mux.HandleFunc("PATCH /trains/{key}", trainHandler.Update)
	mux.HandleFunc("DELETE /trains/{key}", trainHandler.Delete)
	mux.HandleFunc("GET /trains/{key}/status", trainHandler.Status)

	mux.HandleFunc("POST /schedules", scheduleHandler.Create)
	mux.HandleFunc("GET /schedules", scheduleHandler.List)

	mux.HandleFunc("POST /tickets", ticketHandler.Create)

	mux.HandleFunc("POST /users", userHandler.Create)
	mux.HandleFunc("GET /users", userHandler.List)
	mux.HandleFunc("DELETE /users/{email}", userHandler.Delete)
	mux.HandleFunc("POST /users/{email}/history", userHandler.RecordPurchase)
	mux.HandleFunc("GET /users/{email}/history", userHandler.History)

	return loggingMiddleware(mux)
}
