// Package cache holds decoded values keyed by a 64-bit content fingerprint.
//
// Admission and eviction follow TinyLFU: a newcomer only displaces a resident
// entry when it has been requested more often. The underlying tinylfu.T is
// not safe for concurrent use, so every call takes the cache mutex.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/dgryski/go-tinylfu"
)

// Cache is a fixed-capacity TinyLFU cache. It is safe for concurrent use.
type Cache[V any] struct {
	mu        sync.Mutex
	lfu       *tinylfu.T[uint64, V]
	resident  map[uint64]struct{}
	capacity  int
	evictions atomic.Uint64
}

// New creates a cache holding at most capacity entries.
// A capacity below one is raised to one.
func New[V any](capacity int) *Cache[V] {
	capacity = max(capacity, 1)

	c := &Cache[V]{
		resident: make(map[uint64]struct{}, capacity),
		capacity: capacity,
	}
	c.lfu = tinylfu.New[uint64, V](capacity, capacity*10, fingerprintHash, tinylfu.OnEvict(c.evict))

	return c
}

// keys are already xxHash64 digests
func fingerprintHash(k uint64) uint64 { return k }

// evict runs with c.mu held, from inside lfu.Add.
func (c *Cache[V]) evict(key uint64, _ V) {
	delete(c.resident, key)
	c.evictions.Add(1)
}

// Get returns the value stored for key.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lfu.Get(key)
	if !ok {
		delete(c.resident, key)
	}

	return v, ok
}

// Add stores v under key. Adding a key that is already resident is a no-op,
// since equal fingerprints mean equal content.
func (c *Cache[V]) Add(key uint64, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.resident[key]; ok {
		return
	}

	c.resident[key] = struct{}{}
	c.lfu.Add(key, v)
}

// Len returns the number of resident entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.resident)
}

// Cap returns the configured capacity.
func (c *Cache[V]) Cap() int {
	return c.capacity
}

// Evictions returns how many entries were evicted or refused admission.
func (c *Cache[V]) Evictions() uint64 {
	return c.evictions.Load()
}
