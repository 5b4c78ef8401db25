package domain

import "fmt"

// TrainStatus is the closed set of operational states a train can be in.
// It is stored as an integer in the ledger; values outside the set are
// rejected at the boundary so invalid states never enter the store.
type TrainStatus int

const (
	StatusNotArrived TrainStatus = iota
	StatusArrived
	StatusInTransit
	StatusDelayed
	StatusCancelled
	StatusArchived
)

var trainStatusNames = map[TrainStatus]string{
	StatusNotArrived: "NOT_ARRIVED",
	StatusArrived:    "ARRIVED",
	StatusInTransit:  "IN_TRANSIT",
	StatusDelayed:    "DELAYED",
	StatusCancelled:  "CANCELLED",
	StatusArchived:   "ARCHIVED",
}

func (s TrainStatus) String() string {
	if name, ok := trainStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TrainStatus(%d)", int(s))
}

// Valid reports whether the status is a member of the closed set.
func (s TrainStatus) Valid() bool {
	_, ok := trainStatusNames[s]
	return ok
}

// ParseTrainStatus maps the wire name (e.g. "IN_TRANSIT") to its status.
func ParseTrainStatus(name string) (TrainStatus, error) {
	for s, n := range trainStatusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrValidation("unknown train status %q", name)
}

// TrainStatusFromInt converts a stored integer back to a status.
func TrainStatusFromInt(v int) (TrainStatus, error) {
	s := TrainStatus(v)
	if !s.Valid() {
		return 0, ErrValidation("train status %d is outside the known set", v)
	}
	return s, nil
}

// Train is a registered train in the ledger. Identity is immutable;
// capacity and status change through partial updates.
type Train struct {
	Key      Key
	Capacity int
	Status   TrainStatus
}
