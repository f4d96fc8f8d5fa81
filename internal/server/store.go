package server

import (
	"context"
	"fmt"

	"github.com/iudanet/gophdraw/internal/server/config"
	"github.com/iudanet/gophdraw/internal/server/storage"
	"github.com/iudanet/gophdraw/internal/server/storage/postgres"
	"github.com/iudanet/gophdraw/internal/server/storage/redis"
	"github.com/iudanet/gophdraw/internal/server/storage/sqlite"
)

// OpenStore открывает хранилище снимков, выбранное в конфигурации
func OpenStore(ctx context.Context, cfg *config.Config) (storage.SnapshotStore, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.StorageDSN)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		return s, nil
	case config.DriverRedis:
		s, err := redis.New(ctx, cfg.StorageDSN, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.StorageDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.StorageDriver)
	}
}
