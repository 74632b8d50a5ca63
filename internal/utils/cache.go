package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache is a bounded LRU cache that also tracks its hit rate.
type ResultCache[V any] struct {
	mu     sync.Mutex
	items  *lru.Cache[string, V]
	hits   int
	misses int
}

func NewResultCache[V any](size int) (*ResultCache[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be greater than zero")
	}
	items, err := lru.New[string, V](size)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	return &ResultCache[V]{items: items}, nil
}

func (c *ResultCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

func (c *ResultCache[V]) Add(key string, value V) {
	c.items.Add(key, value)
}

func (c *ResultCache[V]) Size() int {
	return c.items.Len()
}

func (c *ResultCache[V]) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	}
	return 0.0
}

// CacheKey hashes its parts into a fixed-size key.
func CacheKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
