package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appfulfillment "github.com/storefront/backoffice/internal/application/fulfillment"
)

// RedisSnapshotCache caches order snapshots in Redis. Suitable for
// deployments where multiple instances serve the same store.
// All operations are best effort: Redis failures are logged and the
// caller proceeds against the database.
type RedisSnapshotCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisSnapshotCache creates a new Redis-backed snapshot cache
func NewRedisSnapshotCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSnapshotCacheWithClient(client, ttl, logger), nil
}

// NewRedisSnapshotCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSnapshotCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSnapshotCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisSnapshotCache{
		client:    client,
		keyPrefix: "order:snapshot:",
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *RedisSnapshotCache) key(orderID uuid.UUID) string {
	return c.keyPrefix + orderID.String()
}

// Get retrieves an order snapshot from Redis
func (c *RedisSnapshotCache) Get(ctx context.Context, orderID uuid.UUID) (*appfulfillment.OrderResponse, bool) {
	data, err := c.client.Get(ctx, c.key(orderID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("failed to read snapshot from redis",
				zap.String("order_id", orderID.String()),
				zap.Error(err),
			)
		}
		return nil, false
	}

	var snapshot appfulfillment.OrderResponse
	if err := json.Unmarshal(data, &snapshot); err != nil {
		c.logger.Warn("corrupt snapshot in redis, dropping",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		c.client.Del(ctx, c.key(orderID))
		return nil, false
	}
	return &snapshot, true
}

// Set stores an order snapshot in Redis with the configured TTL
func (c *RedisSnapshotCache) Set(ctx context.Context, snapshot *appfulfillment.OrderResponse) {
	if snapshot == nil {
		return
	}

	orderID, err := uuid.Parse(snapshot.ID)
	if err != nil {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Warn("failed to marshal snapshot",
			zap.String("order_id", snapshot.ID),
			zap.Error(err),
		)
		return
	}

	if err := c.client.Set(ctx, c.key(orderID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write snapshot to redis",
			zap.String("order_id", snapshot.ID),
			zap.Error(err),
		)
	}
}

// Invalidate removes an order snapshot from Redis
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, orderID uuid.UUID) {
	if err := c.client.Del(ctx, c.key(orderID)).Err(); err != nil {
		c.logger.Warn("failed to invalidate snapshot in redis",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
	}
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// Ensure RedisSnapshotCache implements SnapshotCache
var _ appfulfillment.SnapshotCache = (*RedisSnapshotCache)(nil)
