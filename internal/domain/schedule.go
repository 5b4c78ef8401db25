package domain

// Schedule is a graph-store record describing one recurring run of a train.
// It references the train only by the canonical string form of its key;
// the graph store never holds a live link back into the ledger.
type Schedule struct {
	TrainKey   string
	StartTime  string // HH:MM, zero-padded
	ValidFrom  string // YYYY-MM-DD, zero-padded
	ValidUntil string // YYYY-MM-DD, zero-padded
}

// ScheduleStop is one entry in a proposed stop sequence: the station and the
// minutes the train waits there before continuing.
type ScheduleStop struct {
	Station     Key
	WaitMinutes int
}
