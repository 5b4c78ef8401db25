package memory

import (
	"context"
	"sort"
	"sync"

	"rail-booking-service/internal/domain"
)

// ScheduleStore is an in-memory stand-in for the graph store.
type ScheduleStore struct {
	mu        sync.Mutex
	schedules []domain.Schedule

	// ReadCalls counts SchedulesByTrain invocations so tests can assert
	// that an absent train never triggers a graph read.
	ReadCalls int
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{}
}

func (s *ScheduleStore) CreateSchedule(ctx context.Context, sched domain.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules = append(s.schedules, sched)
	return nil
}

func (s *ScheduleStore) SchedulesByTrain(ctx context.Context, trainKey string) ([]domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ReadCalls++

	out := make([]domain.Schedule, 0, 4)
	for _, sched := range s.schedules {
		if sched.TrainKey == trainKey {
			out = append(out, sched)
		}
	}
	sortSchedules(out)
	return out, nil
}

func (s *ScheduleStore) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Schedule, len(s.schedules))
	copy(out, s.schedules)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TrainKey != out[j].TrainKey {
			return out[i].TrainKey < out[j].TrainKey
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

// Count returns the number of stored schedule nodes.
func (s *ScheduleStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.schedules)
}

func sortSchedules(schedules []domain.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		if schedules[i].StartTime != schedules[j].StartTime {
			return schedules[i].StartTime < schedules[j].StartTime
		}
		return schedules[i].ValidFrom < schedules[j].ValidFrom
	})
}
