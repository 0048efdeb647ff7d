package cache

import "context"

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing; every Get misses with Nil.
func NewNoopCache() RedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error { return Nil }
