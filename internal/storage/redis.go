package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// RedisStorage keeps the snapshot under one redis string key with no TTL.
type RedisStorage struct {
	rdb *redis.Client
	key string
}

// NewRedisStorage returns a RedisStorage using key on rdb.
func NewRedisStorage(rdb *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStorage{rdb: rdb, key: key}
}

func (s *RedisStorage) Name() string { return "redis" }

func (s *RedisStorage) Load(ctx context.Context) ([]model.Listing, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	listings, _, err := Decode(data)
	return listings, err
}

func (s *RedisStorage) Save(ctx context.Context, listings []model.Listing) error {
	data, err := Encode(listings, time.Now())
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
