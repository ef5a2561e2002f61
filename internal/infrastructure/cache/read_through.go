package cache

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared load, which outlives the caller that started it.
const loadTimeout = 30 * time.Second

// ReadThrough is a size- and TTL-bounded cache that loads missing keys on
// demand. Concurrent misses for the same key share a single load; each caller
// stops waiting when its own context ends.
type ReadThrough[V any] struct {
	name   string
	lru    *expirable.LRU[string, V]
	group  singleflight.Group
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
}

// New returns a cache sized by cfg. A non-positive size disables caching and
// every call goes straight to the loader.
func New[V any](name string, cfg config.CacheConfig, logger *slog.Logger) *ReadThrough[V] {
	c := &ReadThrough[V]{
		name:   name,
		logger: logger,
	}
	if cfg.Size > 0 {
		c.lru = expirable.NewLRU[string, V](cfg.Size, nil, cfg.TTL)
	}
	return c
}

func (c *ReadThrough[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if c.lru == nil {
		return load(ctx)
	}

	if value, ok := c.lru.Get(key); ok {
		c.logger.Debug("cache hit", "cache", c.name, "key", key)
		return value, nil
	}

	gen := c.currentGeneration()
	flightKey := strconv.FormatUint(gen, 10) + ":" + key

	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		value, err := load(loadCtx)
		if err != nil {
			return value, err
		}
		c.store(gen, key, value)
		return value, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		c.logger.Debug("cache miss", "cache", c.name, "key", key, "shared", res.Shared)
		return res.Val.(V), nil
	}
}

// InvalidateAll drops every entry. Loads that started before the call do
// not repopulate the cache.
func (c *ReadThrough[V]) InvalidateAll() {
	if c.lru == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.lru.Purge()
}

func (c *ReadThrough[V]) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

func (c *ReadThrough[V]) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *ReadThrough[V]) store(gen uint64, key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.lru.Add(key, value)
}
