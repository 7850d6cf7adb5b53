package cache

import (
	"context"
	"time"

	expirable "github.com/go-pkgz/expirable-cache/v2"
)

// Memory is a process-local LRU backend.
type Memory struct {
	cache expirable.Cache[string, []byte]
}

func NewMemory(ttl time.Duration, maxKeys int) *Memory {
	return &Memory{
		cache: expirable.NewCache[string, []byte]().
			WithTTL(ttl).
			WithMaxKeys(maxKeys).
			WithLRU(),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.cache.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.cache.Set(key, value, 0)
	return nil
}
