package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/cache"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

// ResolveDir returns the file backend root, falling back to the
// "aksara-diagram" folder under the user cache directory.
func (c CacheConfig) ResolveDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "aksara-diagram"), nil
}

// OpenCache constructs the cache backend the section describes. The
// redis connect is retried with backoff so a cache container that is
// still starting does not fail the whole run.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		addr := c.Redis.Addr
		if addr == "" {
			addr = "localhost:6379"
		}
		var backend cache.Cache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			backend, err = cache.NewRedisCache(ctx, cache.RedisOptions{
				Addr:     addr,
				Password: c.Redis.Password,
				DB:       c.Redis.DB,
			})
			return err
		})
		if err != nil {
			return nil, err
		}
		return backend, nil
	case "", "file":
		dir, err := c.ResolveDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}

// OpenStore constructs the store backend the section describes.
func (c StoreConfig) OpenStore(ctx context.Context) (store.Store, error) {
	switch c.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		})
	case "", "file":
		return store.NewFileStore(c.Dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Backend)
	}
}
