package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// Neo4jScheduleStore owns schedule nodes in the graph store. It references
// trains only through the canonical string key written by the ledger side;
// there is no transactional link between the two stores.
type Neo4jScheduleStore struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jScheduleStore(driver neo4j.DriverWithContext) *Neo4jScheduleStore {
	return &Neo4jScheduleStore{Driver: driver}
}

// Persist one schedule node.
func (s *Neo4jScheduleStore) CreateSchedule(ctx context.Context, sched domain.Schedule) (err error) {
	defer obs.Time(ctx, "graph.CreateSchedule")(&err)

	if s.Driver == nil {
		return errors.New("create schedule: driver is nil")
	}

	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
		CREATE (s:Schedule {trainKey: $trainKey, startTime: $startTime, validFrom: $validFrom, validUntil: $validUntil})
		`, map[string]any{
			"trainKey":   sched.TrainKey,
			"startTime":  sched.StartTime,
			"validFrom":  sched.ValidFrom,
			"validUntil": sched.ValidUntil,
		})
		return nil, err
	})
	if err != nil {
		return classify("create schedule", err)
	}

	return nil
}

// List schedules whose train reference equals the given canonical key.
func (s *Neo4jScheduleStore) SchedulesByTrain(ctx context.Context, trainKey string) (_ []domain.Schedule, err error) {
	defer obs.Time(ctx, "graph.SchedulesByTrain")(&err)

	if s.Driver == nil {
		return nil, errors.New("schedules by train: driver is nil")
	}

	query := `
	MATCH (s:Schedule {trainKey: $trainKey})
	RETURN s.trainKey AS trainKey, s.startTime AS startTime, s.validFrom AS validFrom, s.validUntil AS validUntil
	ORDER BY s.startTime, s.validFrom
	`

	schedules, err := s.read(ctx, query, map[string]any{"trainKey": trainKey})
	if err != nil {
		return nil, classify("schedules by train", err)
	}

	return schedules, nil
}

// List every schedule node. Utility read for operators.
func (s *Neo4jScheduleStore) ListSchedules(ctx context.Context) (_ []domain.Schedule, err error) {
	defer obs.Time(ctx, "graph.ListSchedules")(&err)

	if s.Driver == nil {
		return nil, errors.New("list schedules: driver is nil")
	}

	query := `
	MATCH (s:Schedule)
	RETURN s.trainKey AS trainKey, s.startTime AS startTime, s.validFrom AS validFrom, s.validUntil AS validUntil
	ORDER BY s.trainKey, s.startTime, s.validFrom
	`

	schedules, err := s.read(ctx, query, nil)
	if err != nil {
		return nil, classify("list schedules", err)
	}

	return schedules, nil
}

func (s *Neo4jScheduleStore) read(ctx context.Context, query string, params map[string]any) ([]domain.Schedule, error) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		schedules := make([]domain.Schedule, 0, 8)
		for result.Next(ctx) {
			rec := result.Record()
			schedules = append(schedules, domain.Schedule{
				TrainKey:   stringField(rec, "trainKey"),
				StartTime:  stringField(rec, "startTime"),
				ValidFrom:  stringField(rec, "validFrom"),
				ValidUntil: stringField(rec, "validUntil"),
			})
		}
		return schedules, result.Err()
	})
	if err != nil {
		return nil, err
	}

	return out.([]domain.Schedule), nil
}

func stringField(rec *db.Record, name string) string {
	v, ok := rec.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// classify maps driver failures onto the domain taxonomy: connectivity and
// timeout classes are retryable, everything else propagates wrapped.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		neo4j.IsConnectivityError(err) {
		return domain.ErrTransient(err, "%s: graph store unavailable", op)
	}

	return fmt.Errorf("%s: %w", op, err)
}
