package cache

import (
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

// Memory is a process-local keyed cache. Entries never expire: a cache lives
// exactly as long as the run that created it.
type Memory[T any] struct {
	// m serializes MutexGetSet slow paths
	m sync.Mutex

	name string
	c    *cache.Cache
}

func NewMemory[T any](name string) *Memory[T] {
	return &Memory[T]{
		name: name,
		c:    cache.New(cache.NoExpiration, 0),
	}
}

func (c *Memory[T]) Get(key string) (T, error) {
	var zero T
	v, ok := c.c.Get(key)
	if !ok {
		return zero, ErrNotFound
	}
	t, ok := v.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return t, nil
}

func (c *Memory[T]) Set(key string, value T) {
	if l := log.Trace(); l.Enabled() {
		l.Str("cache", c.name).Str("key", key).Msg("setting value to memory cache")
	}
	c.c.Set(key, value, cache.NoExpiration)
}

// MutexGetSet returns the cached value for key, or calls valueFunc to compute
// it when the key is absent after serialization, caching the result.
// Failed computations are not cached.
func (c *Memory[T]) MutexGetSet(key string, valueFunc func() (T, error)) (T, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	c.m.Lock()
	defer c.m.Unlock()
	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Debug().Err(err).Str("cache", c.name).Str("key", key).Msg("failed to get value from valueFunc() in MutexGetSet")
		var zero T
		return zero, err
	}
	c.Set(key, value)
	return value, nil
}

func (c *Memory[T]) Len() int {
	return c.c.ItemCount()
}
