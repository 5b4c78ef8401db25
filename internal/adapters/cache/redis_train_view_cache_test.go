package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"rail-booking-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisTrainViewCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTrainViewCache(client, time.Minute), mr
}

func TestTrainViewCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	view := &domain.TrainView{
		Train: domain.Train{
			Key:      domain.NewKey("ICE-100"),
			Capacity: 400,
			Status:   domain.StatusInTransit,
		},
		Schedules: []domain.Schedule{
			{TrainKey: "ICE-100", StartTime: "08:00", ValidFrom: "2024-01-01", ValidUntil: "2024-12-31"},
		},
	}

	if _, ok, err := c.GetTrainView(ctx, view.Train.Key); err != nil || ok {
		t.Fatalf("expected cold miss, got ok=%v err=%v", ok, err)
	}

	if err := c.PutTrainView(ctx, view); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.GetTrainView(ctx, view.Train.Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected hit after put")
	}

	if got.Train.Key != view.Train.Key {
		t.Errorf("train key = %q, want %q", got.Train.Key.String(), view.Train.Key.String())
	}
	if got.Train.Status != domain.StatusInTransit {
		t.Errorf("status = %v, want %v", got.Train.Status, domain.StatusInTransit)
	}
	if len(got.Schedules) != 1 || got.Schedules[0].StartTime != "08:00" {
		t.Errorf("schedules = %+v, want one schedule at 08:00", got.Schedules)
	}
}

func TestTrainViewCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	view := &domain.TrainView{
		Train: domain.Train{Key: domain.NewKey("R-7"), Capacity: 120, Status: domain.StatusNotArrived},
	}
	if err := c.PutTrainView(ctx, view); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := c.InvalidateTrainView(ctx, view.Train.Key); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, ok, err := c.GetTrainView(ctx, view.Train.Key); err != nil || ok {
		t.Errorf("expected miss after invalidation, got ok=%v err=%v", ok, err)
	}
}

func TestTrainViewCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	view := &domain.TrainView{
		Train: domain.Train{Key: domain.NewKey("R-8"), Capacity: 90, Status: domain.StatusDelayed},
	}
	if err := c.PutTrainView(ctx, view); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.GetTrainView(ctx, view.Train.Key); err != nil || ok {
		t.Errorf("expected miss after TTL, got ok=%v err=%v", ok, err)
	}
}

func TestTrainViewCacheCorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	key := domain.NewKey("R-9")
	mr.Set(viewKey(key), "{not json")

	if _, ok, err := c.GetTrainView(ctx, key); err != nil || ok {
		t.Errorf("expected corrupt entry to read as miss, got ok=%v err=%v", ok, err)
	}
}
