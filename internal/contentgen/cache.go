package contentgen

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cacheable piece of generated content. Skill level
// is part of the key because explanations differ materially between a
// beginner and an advanced learner.
type Key struct {
	Subject    string
	SkillLevel string
	Kind       ContentKind
}

func (k Key) id() string {
	return strings.ToLower(k.Subject) + "|" + strings.ToLower(k.SkillLevel) + "|" + string(k.Kind)
}

// Cache memoizes generated content per key and collapses concurrent
// requests for the same key into a single computation. Compute
// functions decide per result whether it may be stored, so a value
// produced under a dying context is returned but not retained.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[Key]T
	group   singleflight.Group
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[Key]T)}
}

// Get returns the cached value for the key, if present.
func (c *Cache[T]) Get(k Key) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

// Put stores a value unconditionally.
func (c *Cache[T]) Put(k Key, v T) {
	c.mu.Lock()
	c.entries[k] = v
	c.mu.Unlock()
}

// GetOrCompute returns the cached value for the key, computing it on a
// miss. Concurrent callers with the same key share one compute call.
// The compute function reports whether its result should be stored;
// unstored results are handed to the caller and recomputed next time.
func (c *Cache[T]) GetOrCompute(k Key, compute func() (T, bool)) T {
	if v, ok := c.Get(k); ok {
		return v
	}
	v, _, _ := c.group.Do(k.id(), func() (any, error) {
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		v, store := compute()
		if store {
			c.Put(k, v)
		}
		return v, nil
	})
	return v.(T)
}

// Len reports the number of cached entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Invalidate drops the entry for a key, forcing the next request to
// recompute.
func (c *Cache[T]) Invalidate(k Key) {
	c.mu.Lock()
	delete(c.entries, k)
	c.mu.Unlock()
}
