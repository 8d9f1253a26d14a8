package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// StorageRepository keeps the mirror in process memory. Values never
// expire, so it behaves like a durable store for the lifetime of the process.
type StorageRepository struct {
	cache *cache.Cache
}

func NewStorageRepository() *StorageRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &StorageRepository{
		cache: c,
	}
}

func (r *StorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if x, found := r.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *StorageRepository) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.cache.Set(key, value, cache.NoExpiration)
	return nil
}

// Delete drops a key; used to simulate a cleared browser profile.
func (r *StorageRepository) Delete(key string) {
	r.cache.Delete(key)
}
