package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/storage"
	"github.com/mmynk/fintrack/internal/storage/jsonfile"
	"github.com/mmynk/fintrack/internal/storage/mongostore"
	"github.com/mmynk/fintrack/internal/storage/redislock"
	"github.com/mmynk/fintrack/internal/storage/sqlite"
)

func openStore(ctx context.Context, cfg config.StoreConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		slog.Info("Using SQLite store", "database", cfg.SQLitePath)
		return sqlite.New(cfg.SQLitePath)
	case config.DriverJSONFile:
		slog.Info("Using JSON file store", "path", cfg.JSONPath)
		return jsonfile.New(cfg.JSONPath)
	case config.DriverMongo:
		slog.Info("Using MongoDB store", "database", cfg.MongoDatabase)
		return mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// openGuard opens the configured store and, when REDIS_URL is set, puts it
// behind the shared Redis writer lock. The returned close func releases both.
func openGuard(ctx context.Context, cfg *config.Config) (*storage.Guard, func(), error) {
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	if cfg.Lock.RedisURL == "" {
		guard := storage.NewGuard(store)
		return guard, func() { guard.Close() }, nil
	}

	client, err := redislock.Connect(ctx, cfg.Lock.RedisURL)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("Using Redis writer lock", "key", cfg.Lock.Key, "ttl", cfg.Lock.TTL)

	locker := redislock.New(client, cfg.Lock.Key, cfg.Lock.TTL, cfg.Lock.Timeout)
	guard := storage.NewGuard(store, storage.WithLocker(locker))
	return guard, func() {
		guard.Close()
		client.Close()
	}, nil
}
