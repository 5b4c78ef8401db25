package memory

import (
	"context"
	"sync"

	"rail-booking-service/internal/domain"
)

// ViewCache is an in-memory TrainViewCache with hit/invalidation counters.
type ViewCache struct {
	mu    sync.Mutex
	views map[string]domain.TrainView

	Hits          int
	Puts          int
	Invalidations int
}

func NewViewCache() *ViewCache {
	return &ViewCache{views: map[string]domain.TrainView{}}
}

func (c *ViewCache) GetTrainView(ctx context.Context, key domain.Key) (*domain.TrainView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, ok := c.views[key.String()]
	if !ok {
		return nil, false, nil
	}
	c.Hits++
	copied := view
	return &copied, true, nil
}

func (c *ViewCache) PutTrainView(ctx context.Context, view *domain.TrainView) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.views[view.Train.Key.String()] = *view
	c.Puts++
	return nil
}

func (c *ViewCache) InvalidateTrainView(ctx context.Context, key domain.Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.views, key.String())
	c.Invalidations++
	return nil
}
