// Package cache holds rendered public-page data between requests.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// DelPrefix removes every key starting with prefix.
	DelPrefix(ctx context.Context, prefix string) error
}

// Noop never stores anything. Used when caching is disabled.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Del(context.Context, ...string) error { return nil }
func (Noop) DelPrefix(context.Context, string) error { return nil }

// Remember returns the cached value under key, or calls load and stores its
// result for ttl. Cache errors degrade to a load.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var v T
	if hit, err := c.GetJSON(ctx, key, &v); err == nil && hit {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	_ = c.SetJSON(ctx, key, v, ttl)
	return v, nil
}
