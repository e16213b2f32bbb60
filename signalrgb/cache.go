package signalrgb

import (
	"context"
	"sync"
	"sync/atomic"
)

// effectCache is a read-through cache of the service's effect list, scoped
// to one client instance. The list is filled lazily on first read and only
// replaced by an explicit refresh; mutating calls never invalidate it
// because it holds effect metadata, not current-state.
//
// The snapshot is swapped atomically, so concurrent readers observe either
// the old or the new list, never a mix. The mutex only serializes loads so
// concurrent first reads do not stampede the service.
type effectCache struct {
	load     func(ctx context.Context) ([]Effect, error)
	observer Observer

	mu       sync.Mutex
	snapshot atomic.Pointer[[]Effect]
}

func newEffectCache(load func(ctx context.Context) ([]Effect, error), observer Observer) *effectCache {
	return &effectCache{load: load, observer: observer}
}

// effects returns the cached list, filling it on first access. The
// returned slice is the shared snapshot and must not be modified.
func (c *effectCache) effects(ctx context.Context) ([]Effect, error) {
	if snap := c.snapshot.Load(); snap != nil {
		c.observer.OnCacheHit("effects")
		return *snap, nil
	}
	c.observer.OnCacheMiss("effects")

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another reader may have filled the cache while we waited.
	if snap := c.snapshot.Load(); snap != nil {
		return *snap, nil
	}

	effects, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.snapshot.Store(&effects)
	return effects, nil
}

// refresh unconditionally reloads the list and swaps the snapshot. On
// failure the previous snapshot stays in place.
func (c *effectCache) refresh(ctx context.Context) ([]Effect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	effects, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.snapshot.Store(&effects)
	return effects, nil
}

// findByName returns the first effect whose name matches, in the order the
// service returned the list.
func (c *effectCache) findByName(ctx context.Context, name string) (Effect, error) {
	effects, err := c.effects(ctx)
	if err != nil {
		return Effect{}, err
	}
	for _, effect := range effects {
		if effect.Attributes.Name == name {
			return effect, nil
		}
	}
	return Effect{}, &NotFoundError{Resource: `effect "` + name + `"`}
}

// findByID scans the cached list for an effect ID. The second return is
// false when the ID is not in the current snapshot; this is not an error
// because the snapshot may simply be stale.
func (c *effectCache) findByID(ctx context.Context, id string) (Effect, bool, error) {
	effects, err := c.effects(ctx)
	if err != nil {
		return Effect{}, false, err
	}
	for _, effect := range effects {
		if effect.ID == id {
			return effect, true, nil
		}
	}
	return Effect{}, false, nil
}
