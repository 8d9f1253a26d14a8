package implementation

import (
	"context"
	"errors"
	"fmt"

	"prompt-manager/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	rdb *redis.Client
}

func NewRedisStorage(rdb *redis.Client) contract.StorageRepository {
	return &RedisStorage{
		rdb: rdb,
	}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: redis get %s: %v", contract.ErrStorageUnavailable, key, err)
	}
	return value, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key string, value string) error {
	// No expiration: the mirror lives until it is overwritten.
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", contract.ErrStorageUnavailable, key, err)
	}
	return nil
}
