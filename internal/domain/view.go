package domain

// TrainView is the composite read model joining a ledger train row with its
// graph-store schedules. It is assembled per read and carries no live store
// references.
type TrainView struct {
	Train     Train
	Schedules []Schedule
}
