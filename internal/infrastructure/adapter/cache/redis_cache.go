// Package cache stores serialized listings in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// scanBatch is the COUNT hint for SCAN during prefix deletes
const scanBatch = 100

// Config holds redis connection settings
type Config struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// RedisCache implements persistence.Cache with JSON values
type RedisCache struct {
	client    *redis.Client
	namespace string
	logger    coreport.Logger
}

var _ persistence.Cache = (*RedisCache)(nil)

// NewRedisClient connects and pings redis
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewRedisCache wraps a client. Every key is stored under namespace.
func NewRedisCache(client *redis.Client, namespace string, logger coreport.Logger) *RedisCache {
	return &RedisCache{client: client, namespace: namespace, logger: logger}
}

func (c *RedisCache) key(k string) string {
	return c.namespace + k
}

// Get decodes the value at key into dest and reports whether it was found
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), b, ttl).Err()
}

// DeleteByPrefix removes every key starting with prefix using SCAN
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, c.key(prefix)+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	deleted := 0
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			deleted += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return err
		}
		deleted += len(batch)
	}
	if deleted > 0 {
		c.logger.Debug("Cache entries invalidated", map[string]any{"prefix": prefix, "count": deleted})
	}
	return nil
}
