// pkg/memcache/weight_snapshot.go
package mem

import (
	"sync"
	"time"
)

// WeightSnapshotCache memoizes the learned-weight maps between generate
// calls so a burst of requests does not re-read the store every time.
// Entries are copied in and out; callers never share the inner maps.
type WeightSnapshotCache struct {
	mu        sync.RWMutex
	category  map[string]float64
	interest  map[string]float64
	expiresAt time.Time
}

func NewWeightSnapshotCache() *WeightSnapshotCache {
	return &WeightSnapshotCache{}
}

func (c *WeightSnapshotCache) Get() (category, interest map[string]float64, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.category == nil || time.Now().After(c.expiresAt) {
		return nil, nil, false
	}
	return copyMap(c.category), copyMap(c.interest), true
}

func (c *WeightSnapshotCache) Set(category, interest map[string]float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.category = copyMap(category)
	c.interest = copyMap(interest)
	c.expiresAt = time.Now().Add(ttl)
}

// Invalidate drops the cached snapshot; called after feedback writes.
func (c *WeightSnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.category = nil
	c.interest = nil
}

func copyMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
