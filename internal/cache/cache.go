package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Store defines the interface for the per-run memo cache.
// Values live for the duration of one verification run; there is no
// persistence across runs.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
	Clear()
}

// Key generates a cache key from raw source text
func Key(raw string) string {
	hash := sha256.Sum256([]byte(raw))
	return "memoscan:v1:" + hex.EncodeToString(hash[:])
}
