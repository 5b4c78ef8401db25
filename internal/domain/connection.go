package domain

// Connection is a directed edge between two registered stations with a fixed
// travel time. Connections are append-only: schedules are only valid chains
// of these edges.
type Connection struct {
	ID                int64
	Start             Key
	End               Key
	TravelTimeMinutes int
}

// SortingCriteria selects the ordering of connection search results.
type SortingCriteria int

const (
	SortByOverallTravelTime SortingCriteria = iota
)

// TravelTimeFilter refines a connection search by a point in time. All
// sub-fields are optional; an unset field never prunes candidates.
type TravelTimeFilter struct {
	Day    *int
	Month  *int
	Year   *int
	Hour   *int
	Minute *int
	// DepartureTime selects whether the time refers to departure (true)
	// or arrival (false).
	DepartureTime bool
}

// ConnectionQuery describes one direct-connection search. Each query runs
// fresh against the ledger; results are never cached or restartable.
type ConnectionQuery struct {
	Start     Key
	End       Key
	Filter    TravelTimeFilter
	SortBy    SortingCriteria
	Ascending bool
	Limit     int
}

// DefaultSearchLimit bounds a search when the caller supplies no limit.
const DefaultSearchLimit = 5
