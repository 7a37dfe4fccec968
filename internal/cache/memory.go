package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements in-memory caching for one verification run
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a new memory store. Entries never expire on
// their own; the owning run clears the store when its source changes.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

// Set stores a value
func (s *MemoryStore) Set(key string, value interface{}) {
	s.cache.Set(key, value, gocache.NoExpiration)
}

// Delete removes a value
func (s *MemoryStore) Delete(key string) {
	s.cache.Delete(key)
}

// Clear removes all values
func (s *MemoryStore) Clear() {
	s.cache.Flush()
}
