package bootstrap

import (
	"context"
	"fmt"

	"prompt-manager/internal/config"
	"prompt-manager/internal/constant"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/repository/contract"
	"prompt-manager/internal/repository/implementation"
	"prompt-manager/internal/repository/memory"
	"prompt-manager/pkg/database"

	"github.com/redis/go-redis/v9"
)

// NewStorage builds the durable mirror selected by cfg.Driver. The returned
// close func releases any client connection and is never nil.
func NewStorage(ctx context.Context, cfg config.StorageConfig, dsn string, log logger.ILogger) (contract.StorageRepository, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Driver {
	case constant.StorageDriverFile, "":
		log.Info("Bootstrap", "Using file storage", map[string]interface{}{"dir": cfg.Dir})
		return implementation.NewFileStorage(cfg.Dir), noClose, nil

	case constant.StorageDriverMemory:
		log.Info("Bootstrap", "Using in-memory storage", nil)
		return memory.NewStorageRepository(), noClose, nil

	case constant.StorageDriverRedis:
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err})
			opt = &redis.Options{Addr: cfg.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Bootstrap", "Using redis storage", map[string]interface{}{"addr": opt.Addr})
		return implementation.NewRedisStorage(rdb), rdb.Close, nil

	case constant.StorageDriverPostgres:
		db, err := database.NewGormDBFromDSN(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.Info("Bootstrap", "Using postgres storage", nil)
		return implementation.NewGormStorage(db), sqlDB.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
