// Package cache keeps the public module list in Redis
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/courseos/backend/internal/models"
	"github.com/go-redis/redis/v8"
)

const (
	modulesKey = "catalog:modules"
)

// Store is the subset of the Redis client used by the catalog cache
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type catalogCache struct {
	store Store
	ttl   time.Duration
}

// NewCatalogCache creates a new Redis catalog cache whose entries expire after "ttl"
func NewCatalogCache(store Store, ttl time.Duration) *catalogCache {
	return &catalogCache{
		store: store,
		ttl:   ttl,
	}
}

// GetModules returns the cached module list and whether it was present
func (c *catalogCache) GetModules(ctx context.Context) ([]models.Module, bool, error) {
	data, err := c.store.Get(ctx, modulesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached modules: %w", err)
	}

	var modules []models.Module
	if err := json.Unmarshal(data, &modules); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached modules: %w", err)
	}

	return modules, true, nil
}

// SetModules stores the module list
func (c *catalogCache) SetModules(ctx context.Context, modules []models.Module) error {
	data, err := json.Marshal(modules)
	if err != nil {
		return fmt.Errorf("failed to encode modules: %w", err)
	}

	if err := c.store.Set(ctx, modulesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache modules: %w", err)
	}

	return nil
}

// InvalidateModules drops the cached module list
func (c *catalogCache) InvalidateModules(ctx context.Context) error {
	if err := c.store.Del(ctx, modulesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached modules: %w", err)
	}
	return nil
}
