package kinship

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"golang.org/x/sync/singleflight"
)

// AncestorCache memoises ancestor maps keyed by (personID, maxDepth).
// Any edge mutation must call Invalidate; the guard does this when the cache
// is passed to it with WithInvalidator. Person additions and soft deletes
// reach it through PersonChanged. The cache is per process: writes made by
// another process are not seen until the next local invalidation.
type AncestorCache struct {
	reader Reader

	mu         sync.RWMutex
	entries    map[cacheKey]AncestorMap
	generation uint64
	group      singleflight.Group
}

// NewAncestorCache creates a cache over reader.
func NewAncestorCache(reader Reader) *AncestorCache {
	return &AncestorCache{
		reader:  reader,
		entries: make(map[cacheKey]AncestorMap),
	}
}

type cacheKey struct {
	personID string
	depth    int
}

// Get returns the ancestor map for personID, computing it at most once for
// concurrent callers. The returned map is a copy and may be modified.
func (c *AncestorCache) Get(ctx context.Context, personID string, maxDepth int) (AncestorMap, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	key := cacheKey{personID: personID, depth: maxDepth}

	c.mu.RLock()
	cached, ok := c.entries[key]
	generation := c.generation
	c.mu.RUnlock()
	if ok {
		return maps.Clone(cached), nil
	}

	v, err, _ := c.group.Do(fmt.Sprintf("%d|%s|%d", maxDepth, personID, generation), func() (any, error) {
		m, err := AncestorsDepthMap(ctx, c.reader, personID, maxDepth)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// Results computed before an invalidation are not stored.
		if c.generation == generation {
			c.entries[key] = m
		}
		c.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return maps.Clone(v.(AncestorMap)), nil
}

// Invalidate drops every cached map.
func (c *AncestorCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]AncestorMap)
	c.generation++
}

// PersonChanged implements PersonObserver. A removed person drops their own
// maps and every map that reaches them. Any other change drops everything,
// since a restored person can reconnect paths.
func (c *AncestorCache) PersonChanged(personID string, removed bool) {
	if !removed {
		c.Invalidate()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, m := range c.entries {
		if _, reached := m[personID]; reached || key.personID == personID {
			delete(c.entries, key)
		}
	}
	c.generation++
}

// Len returns the number of cached maps.
func (c *AncestorCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
