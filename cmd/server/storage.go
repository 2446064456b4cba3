package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/land-marketplace/internal/config"
	"github.com/iliyamo/land-marketplace/internal/database"
	"github.com/iliyamo/land-marketplace/internal/storage"
)

var errRedisUnavailable = errors.New("redis backend selected but redis is unavailable")

// openStorage builds the snapshot backend named by cfg.StorageBackend.
// The returned func releases its connections.
func openStorage(ctx context.Context, cfg config.Config, rdb *redis.Client) (storage.Storage, func(), error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case config.StorageFile, "":
		return storage.NewFileStorage(cfg.DataFile), noop, nil
	case config.StorageMemory:
		return storage.NewMemoryStorage(), noop, nil
	case config.StorageRedis:
		if rdb == nil {
			return nil, noop, errRedisUnavailable
		}
		return storage.NewRedisStorage(rdb, cfg.StorageKey), noop, nil
	case config.StorageMySQL:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, noop, fmt.Errorf("open mysql: %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return storage.NewMySQLStorage(db, cfg.StorageKey), func() { _ = db.Close() }, nil
	case config.StorageMongo:
		client, err := storage.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, fmt.Errorf("connect mongo: %w", err)
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return storage.NewMongoStorage(coll, cfg.StorageKey), closeFn, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
