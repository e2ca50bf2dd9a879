package inmemorycache

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value      V
	expiration time.Time
}

// InMemoryCache is a TTL map guarded by a single mutex. Expired entries are
// replaced on access and dropped in bulk by a background sweep.
type InMemoryCache[V any] struct {
	cache           map[string]cacheEntry[V]
	mutex           sync.Mutex
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

func NewInMemoryCache[V any](cleanupInterval time.Duration) *InMemoryCache[V] {
	provider := &InMemoryCache[V]{
		cache:           make(map[string]cacheEntry[V]),
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

// GetOrCreate returns the live value for key, or stores the result of create.
// Either way the entry's expiration is pushed out by ttl.
func (m *InMemoryCache[V]) GetOrCreate(key string, ttl time.Duration, create func() V) V {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	entry, exists := m.cache[key]
	if !exists || now.After(entry.expiration) {
		entry = cacheEntry[V]{value: create()}
	}
	entry.expiration = now.Add(ttl)
	m.cache[key] = entry

	return entry.value
}

// Close stops the background sweep. It is safe to call more than once.
func (m *InMemoryCache[V]) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

func (m *InMemoryCache[V]) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
