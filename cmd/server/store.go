package main

import (
	"context"
	"fmt"

	"github.com/mmynk/futmanager/internal/config"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/internal/storage/memory"
	"github.com/mmynk/futmanager/internal/storage/postgres"
	"github.com/mmynk/futmanager/internal/storage/redisstore"
	"github.com/mmynk/futmanager/internal/storage/sqlite"
)

// openBackend connects the configured storage driver.
func openBackend(ctx context.Context, cfg config.Store) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DSN)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	case config.DriverRedis:
		return redisstore.New(ctx, cfg.DSN)
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
