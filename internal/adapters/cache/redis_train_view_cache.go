package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rail-booking-service/internal/domain"
	"rail-booking-service/internal/platform/obs"
)

// RedisTrainViewCache is a read-through cache for composite train views.
// Entries are invalidated by the train and schedule write paths; a short TTL
// bounds staleness if an invalidation is ever lost.
type RedisTrainViewCache struct {
	Client *redis.Client
	TTL    time.Duration
}

const defaultViewTTL = 5 * time.Minute

func NewRedisTrainViewCache(client *redis.Client, ttl time.Duration) *RedisTrainViewCache {
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	return &RedisTrainViewCache{Client: client, TTL: ttl}
}

func viewKey(key domain.Key) string { return "trainview:" + key.String() }

// Fetch a cached view; ok is false on a miss. A corrupt entry is treated as a
// miss after being dropped, never surfaced to the caller.
func (c *RedisTrainViewCache) GetTrainView(ctx context.Context, key domain.Key) (_ *domain.TrainView, _ bool, err error) {
	defer obs.Time(ctx, "cache.GetTrainView")(&err)

	if c.Client == nil {
		return nil, false, errors.New("view cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, viewKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.ErrTransient(err, "get view cache: key %q", key.String())
	}

	var view domain.TrainView
	if err := json.Unmarshal(raw, &view); err != nil {
		_ = c.Client.Del(ctx, viewKey(key)).Err()
		return nil, false, nil
	}

	return &view, true, nil
}

// Store a view under its train key.
func (c *RedisTrainViewCache) PutTrainView(ctx context.Context, view *domain.TrainView) (err error) {
	defer obs.Time(ctx, "cache.PutTrainView")(&err)

	if c.Client == nil {
		return errors.New("view cache: client is nil")
	}
	if view == nil {
		return errors.New("put view cache: view is nil")
	}

	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("put view cache: encode view: %w", err)
	}

	if err := c.Client.Set(ctx, viewKey(view.Train.Key), raw, c.TTL).Err(); err != nil {
		return domain.ErrTransient(err, "put view cache: key %q", view.Train.Key.String())
	}

	return nil
}

// Drop any cached view for the key.
func (c *RedisTrainViewCache) InvalidateTrainView(ctx context.Context, key domain.Key) (err error) {
	defer obs.Time(ctx, "cache.InvalidateTrainView")(&err)

	if c.Client == nil {
		return errors.New("view cache: client is nil")
	}

	if err := c.Client.Del(ctx, viewKey(key)).Err(); err != nil {
		return domain.ErrTransient(err, "invalidate view cache: key %q", key.String())
	}

	return nil
}
