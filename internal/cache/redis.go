// Package cache provides the Redis client and JSON cache-aside helpers.
package cache

import (
	"context"
	"time"

	"fitgpt/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the process-wide Redis client. It stays nil when Redis is
// unavailable; all helpers degrade to pass-through in that case.
var Client *redis.Client

// InitRedis connects the global client to the given address.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis connection failed, continuing without cache", "error", err)
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the global Redis client, which may be nil.
func GetClient() *redis.Client {
	return Client
}
