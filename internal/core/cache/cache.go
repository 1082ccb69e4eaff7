// Package cache provides a bounded, time-expiring key-value store with
// least-recently-used eviction, plus a registry of per-kind instances so
// eviction pressure in one computation kind cannot starve another.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// entry is one live cache slot. lastAccess drives LRU ordering; expiresAt
// drives TTL expiry.
type entry[K comparable, V any] struct {
	key        K
	value      V
	insertedAt time.Time
	expiresAt  time.Time
	accessed   int64
	lastAccess time.Time
}

// Cache is a concurrency-safe bounded map with per-entry TTL and LRU
// eviction. All bookkeeping for one operation happens under a single lock;
// no lock is held across a blocking call.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	entries    map[K]*list.Element
	order      *list.List // front = most recently used
	maxSize    int
	defaultTTL time.Duration
	clock      func() time.Time

	hits        int64
	misses      int64
	evictions   int64
	expirations int64
}

// Option customizes cache construction.
type Option[K comparable, V any] func(*Cache[K, V])

// WithClock overrides the time source, for tests.
func WithClock[K comparable, V any](clock func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.clock = clock
	}
}

// New builds a cache bounded at maxSize entries with the given default TTL.
func New[K comparable, V any](maxSize int, defaultTTL time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	c := &Cache[K, V]{
		entries:    make(map[K]*list.Element),
		order:      list.New(),
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value for key. Expired entries are removed and
// reported as misses. A hit refreshes the entry's LRU position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}

	item := element.Value.(*entry[K, V])
	now := c.clock()
	if now.After(item.expiresAt) {
		c.removeLocked(element)
		c.expirations++
		c.misses++
		return zero, false
	}

	item.accessed++
	item.lastAccess = now
	c.order.MoveToFront(element)
	c.hits++
	return item.value, true
}

// Has reports whether key is live without counting a hit or miss.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[key]
	if !ok {
		return false
	}
	item := element.Value.(*entry[K, V])
	now := c.clock()
	if now.After(item.expiresAt) {
		c.removeLocked(element)
		c.expirations++
		return false
	}
	item.lastAccess = now
	c.order.MoveToFront(element)
	return true
}

// Set inserts or overwrites key. Inserting a new key at capacity evicts the
// least-recently-used entry first. A zero ttl uses the cache default.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value, ttl)
}

// GetOrSet returns the cached value for key, computing and storing it on a
// miss. Concurrent misses for the same key may each invoke compute; the
// last write wins. compute runs outside the lock.
func (c *Cache[K, V]) GetOrSet(key K, ttl time.Duration, compute func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.setLocked(key, value, ttl)
	c.mu.Unlock()
	return value, nil
}

// Delete removes key if present.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if element, ok := c.entries[key]; ok {
		c.removeLocked(element)
	}
}

// Len returns the number of live entries, purging any that have expired.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeExpiredLocked()
	return len(c.entries)
}

// Clear drops every entry without touching the counters.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*list.Element)
	c.order.Init()
}

func (c *Cache[K, V]) setLocked(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := c.clock()

	if element, ok := c.entries[key]; ok {
		item := element.Value.(*entry[K, V])
		item.value = value
		item.insertedAt = now
		item.expiresAt = now.Add(ttl)
		item.lastAccess = now
		c.order.MoveToFront(element)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	item := &entry[K, V]{
		key:        key,
		value:      value,
		insertedAt: now,
		expiresAt:  now.Add(ttl),
		lastAccess: now,
	}
	c.entries[key] = c.order.PushFront(item)
}

func (c *Cache[K, V]) evictOldestLocked() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.removeLocked(oldest)
	c.evictions++
}

func (c *Cache[K, V]) removeLocked(element *list.Element) {
	item := element.Value.(*entry[K, V])
	delete(c.entries, item.key)
	c.order.Remove(element)
}

func (c *Cache[K, V]) purgeExpiredLocked() {
	now := c.clock()
	for element := c.order.Back(); element != nil; {
		prev := element.Prev()
		item := element.Value.(*entry[K, V])
		if now.After(item.expiresAt) {
			c.removeLocked(element)
			c.expirations++
		}
		element = prev
	}
}
