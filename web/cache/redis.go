// Package cache provides Redis caching for the panel. It supports both an
// embedded instance (miniredis) and an external Redis server.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hakwonlab/acadpanel/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	miniRedis  *miniredis.Miniredis
	ctx        = context.Background()
	isEmbedded = true
)

// InitRedis initializes the Redis client. If redisAddr is empty, an embedded
// instance is started; otherwise the external server is used.
func InitRedis(redisAddr string) error {
	if redisAddr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start embedded Redis: %w", err)
		}
		miniRedis = mr
		client = redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})
		isEmbedded = true
		logger.Info("Embedded Redis started on", mr.Addr())
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: "",
			DB:       0,
		})
		isEmbedded = false

		if _, err := client.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", redisAddr, err)
		}
		logger.Info("Connected to external Redis at", redisAddr)
	}

	return nil
}

// GetClient returns the Redis client instance.
func GetClient() *redis.Client {
	return client
}

// IsEmbedded returns true if using embedded Redis.
func IsEmbedded() bool {
	return isEmbedded
}

// Close closes the Redis connection and stops embedded Redis if running.
func Close() error {
	if client != nil {
		if err := client.Close(); err != nil {
			return err
		}
	}
	if miniRedis != nil {
		miniRedis.Close()
	}
	return nil
}

// Set stores a value in Redis with expiration.
func Set(key string, value any, expiration time.Duration) error {
	if client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from Redis.
func Get(key string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("Redis client not initialized")
	}
	result, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("redis: nil")
	}
	return result, err
}

// Incr increments a counter key and returns the new value.
func Incr(key string) (int64, error) {
	if client == nil {
		return 0, fmt.Errorf("Redis client not initialized")
	}
	return client.Incr(ctx, key).Result()
}

// Expire sets a TTL on an existing key.
func Expire(key string, ttl time.Duration) error {
	if client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return client.Expire(ctx, key, ttl).Err()
}

// Delete removes a key from Redis.
func Delete(key string) error {
	if client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return client.Del(ctx, key).Err()
}

// DeletePattern removes all keys matching a pattern.
func DeletePattern(pattern string) error {
	if client == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return client.Del(ctx, keys...).Err()
	}
	return nil
}

// Exists checks if a key exists in Redis.
func Exists(key string) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("Redis client not initialized")
	}
	count, err := client.Exists(ctx, key).Result()
	return count > 0, err
}
