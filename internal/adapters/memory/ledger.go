package memory

import (
	"context"
	"sort"
	"sync"

	"rail-booking-service/internal/domain"
)

// Ledger is an in-memory stand-in for the relational ledger, used by service
// and handler tests. It mirrors the Postgres adapter's error semantics,
// including the combined existence counts.
type Ledger struct {
	mu           sync.Mutex
	stations     map[string]domain.Station
	connections  []domain.Connection
	nextConnID   int64
	trains       map[string]domain.Train
	users        map[string]domain.User
	nextUserID   int64
	tickets      []domain.Ticket
	nextTicketID int64
	purchases    []domain.PurchaseRecord

	// TrainWrites counts mutating train statements actually issued, so
	// tests can assert that a no-op update writes nothing.
	TrainWrites int
}

func NewLedger() *Ledger {
	return &Ledger{
		stations:     map[string]domain.Station{},
		trains:       map[string]domain.Train{},
		users:        map[string]domain.User{},
		nextConnID:   1,
		nextUserID:   1,
		nextTicketID: 1,
	}
}

func (l *Ledger) CreateStation(ctx context.Context, st domain.Station) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.stations[st.Key.String()]; ok {
		return domain.ErrConflict("station %q already exists", st.Key.String())
	}
	l.stations[st.Key.String()] = st
	return nil
}

func (l *Ledger) stationCount(a, b domain.Key) int {
	count := 0
	if _, ok := l.stations[a.String()]; ok {
		count++
	}
	if _, ok := l.stations[b.String()]; ok {
		count++
	}
	return count
}

func (l *Ledger) CreateConnection(ctx context.Context, start, end domain.Key, travelTimeMinutes int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stationCount(start, end) < 2 {
		return domain.ErrValidation("one or both stations do not exist")
	}

	l.connections = append(l.connections, domain.Connection{
		ID:                l.nextConnID,
		Start:             start,
		End:               end,
		TravelTimeMinutes: travelTimeMinutes,
	})
	l.nextConnID++
	return nil
}

func (l *Ledger) SearchConnections(ctx context.Context, q domain.ConnectionQuery) ([]domain.Connection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stationCount(q.Start, q.End) < 2 {
		return nil, domain.ErrNotFound("one or both stations do not exist")
	}

	matches := make([]domain.Connection, 0, 4)
	for _, c := range l.connections {
		if c.Start == q.Start && c.End == q.End {
			matches = append(matches, c)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if q.Ascending {
			return matches[i].TravelTimeMinutes < matches[j].TravelTimeMinutes
		}
		return matches[i].TravelTimeMinutes > matches[j].TravelTimeMinutes
	})

	if q.Limit > 0 && len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}
	return matches, nil
}

func (l *Ledger) CreateTrain(ctx context.Context, t domain.Train) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.trains[t.Key.String()]; ok {
		return domain.ErrConflict("train %q already exists", t.Key.String())
	}
	l.trains[t.Key.String()] = t
	l.TrainWrites++
	return nil
}

func (l *Ledger) UpdateTrain(ctx context.Context, key domain.Key, capacity *int, status *domain.TrainStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if capacity == nil && status == nil {
		return nil
	}

	t, ok := l.trains[key.String()]
	if !ok {
		// The Postgres adapter issues the statement regardless; zero rows
		// affected is not an error there either.
		l.TrainWrites++
		return nil
	}

	if capacity != nil {
		t.Capacity = *capacity
	}
	if status != nil {
		t.Status = *status
	}
	l.trains[key.String()] = t
	l.TrainWrites++
	return nil
}

func (l *Ledger) DeleteTrain(ctx context.Context, key domain.Key) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.trains, key.String())
	l.TrainWrites++
	return nil
}

func (l *Ledger) GetTrain(ctx context.Context, key domain.Key) (*domain.Train, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.trains[key.String()]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (l *Ledger) CreateUser(ctx context.Context, email, details string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[email]; ok {
		return domain.ErrConflict("user %q already exists", email)
	}
	l.users[email] = domain.User{ID: l.nextUserID, Email: email, Details: details}
	l.nextUserID++
	return nil
}

func (l *Ledger) DeleteUser(ctx context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.users, email)
	return nil
}

func (l *Ledger) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (l *Ledger) ListUsers(ctx context.Context) ([]domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	users := make([]domain.User, 0, len(l.users))
	for _, u := range l.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (l *Ledger) CreateTicket(ctx context.Context, userEmail string, connectionID int64, reserveSeats bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[userEmail]
	if !ok {
		return domain.ErrNotFound("user %q does not exist", userEmail)
	}

	l.tickets = append(l.tickets, domain.Ticket{
		ID:            l.nextTicketID,
		UserID:        u.ID,
		ConnectionID:  connectionID,
		ReservedSeats: reserveSeats,
	})
	l.nextTicketID++
	return nil
}

func (l *Ledger) RecordPurchase(ctx context.Context, rec domain.PurchaseRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec.ID = int64(len(l.purchases) + 1)
	l.purchases = append(l.purchases, rec)
	return nil
}

func (l *Ledger) PurchaseHistory(ctx context.Context, email string) ([]domain.PurchaseRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]domain.PurchaseRecord, 0, 4)
	for _, rec := range l.purchases {
		if rec.UserEmail == email {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TravelDate.After(records[j].TravelDate)
	})
	return records, nil
}

// Tickets returns a snapshot of sold tickets for assertions.
func (l *Ledger) Tickets() []domain.Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Ticket, len(l.tickets))
	copy(out, l.tickets)
	return out
}
