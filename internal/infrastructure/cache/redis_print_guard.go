package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pos/backend/internal/domain/printing"
	"github.com/redis/go-redis/v9"
)

// RedisPrintGuard implements PrintGuard using Redis. This is for deployments
// with more than one POS terminal sharing the same printers, where the guard
// state must be shared across instances.
type RedisPrintGuard struct {
	client    *redis.Client
	keyPrefix string
}

// RedisGuardConfig holds Redis connection configuration
type RedisGuardConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisPrintGuard creates a new Redis-based print guard
func NewRedisPrintGuard(cfg RedisGuardConfig) (*RedisPrintGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPrintGuard{
		client:    client,
		keyPrefix: "print:guard:",
	}, nil
}

// NewRedisPrintGuardWithClient creates a guard with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisPrintGuardWithClient(client *redis.Client, keyPrefix string) *RedisPrintGuard {
	if keyPrefix == "" {
		keyPrefix = "print:guard:"
	}
	return &RedisPrintGuard{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Acquire claims the location with SETNX so only one run can hold it.
// The TTL expires holds left behind by crashed runs.
func (g *RedisPrintGuard) Acquire(ctx context.Context, locationKey string, ttl time.Duration) (bool, error) {
	key := g.keyPrefix + locationKey

	result, err := g.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire print guard: %w", err)
	}
	return result, nil
}

// Release frees the location
func (g *RedisPrintGuard) Release(ctx context.Context, locationKey string) error {
	key := g.keyPrefix + locationKey

	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release print guard: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (g *RedisPrintGuard) Close() error {
	return g.client.Close()
}

// Ensure RedisPrintGuard implements PrintGuard
var _ printing.PrintGuard = (*RedisPrintGuard)(nil)
