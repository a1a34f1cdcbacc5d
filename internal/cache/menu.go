package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"navmenu/internal/metrics"
	"navmenu/internal/models"
)

// Key is the single slot holding the computed tree.
const Key = "data"

// LoadFunc computes a fresh menu tree.
type LoadFunc func(ctx context.Context) ([]models.MenuNode, error)

// MenuCache serves the last computed tree and recomputes it on a miss.
// Concurrent misses share one load.
type MenuCache struct {
	store Store
	ttl   time.Duration
	load  LoadFunc
	group singleflight.Group
}

// NewMenuCache creates a cache over store whose entries live for ttl.
func NewMenuCache(store Store, ttl time.Duration, load LoadFunc) *MenuCache {
	return &MenuCache{store: store, ttl: ttl, load: load}
}

// Get returns the cached tree, loading and storing it on a miss.
func (c *MenuCache) Get(ctx context.Context) ([]models.MenuNode, error) {
	if tree, ok := c.cached(); ok {
		metrics.RecordCache(metrics.CacheHit)
		return tree, nil
	}
	metrics.RecordCache(metrics.CacheMiss)

	// The shared load outlives any single caller; the upstream timeout bounds it.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(Key, func() (any, error) {
		if tree, ok := c.cached(); ok {
			return tree, nil
		}
		tree, err := c.load(loadCtx)
		if err != nil {
			return nil, err
		}
		if err := c.put(tree); err != nil {
			slog.Warn("failed to store menu, serving uncached", "error", err)
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.MenuNode), nil
}

// Refresh recomputes the tree and overwrites the slot.
// On failure the previous entry is left intact.
func (c *MenuCache) Refresh(ctx context.Context) error {
	tree, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	return c.put(tree)
}

// Ready reports whether the backing store is reachable.
func (c *MenuCache) Ready(ctx context.Context) error {
	return c.store.Ping(ctx)
}

func (c *MenuCache) cached() ([]models.MenuNode, bool) {
	data, err := c.store.Get(Key)
	if err != nil {
		slog.Warn("menu cache read failed", "error", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var tree []models.MenuNode
	if err := json.Unmarshal(data, &tree); err != nil {
		slog.Warn("discarding undecodable menu cache entry", "error", err)
		return nil, false
	}
	return tree, true
}

func (c *MenuCache) put(tree []models.MenuNode) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := c.store.Set(Key, data, c.ttl); err != nil {
		return fmt.Errorf("store menu: %w", err)
	}
	return nil
}
