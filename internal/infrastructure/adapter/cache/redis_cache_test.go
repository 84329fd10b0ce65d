package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
)

// unreachable points at a port nothing listens on so every command fails fast
func unreachable() *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewRedisCache(client, "ac:", logger.NewNoopLogger())
}

func TestRedisCacheKeyNamespace(t *testing.T) {
	c := NewRedisCache(nil, "ac:", logger.NewNoopLogger())
	assert.Equal(t, "ac:admin:transactions:p1", c.key("admin:transactions:p1"))
}

func TestRedisCacheSurfacesConnectionErrors(t *testing.T) {
	c := unreachable()
	ctx := context.Background()

	var dest map[string]any
	found, err := c.Get(ctx, "k", &dest)
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, c.Set(ctx, "k", map[string]any{"a": 1}, time.Minute))
	assert.Error(t, c.DeleteByPrefix(ctx, "admin:"))
}

func TestRedisCacheSetRejectsUnencodable(t *testing.T) {
	c := unreachable()
	err := c.Set(context.Background(), "k", make(chan int), time.Minute)
	assert.Error(t, err)
}

func TestNewRedisClientPingFailure(t *testing.T) {
	_, err := NewRedisClient(context.Background(), Config{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
