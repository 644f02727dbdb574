package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// FlightCache keeps the joined flights of a route in redis.
type FlightCache struct {
	redis RedisClient
}

func NewFlightCache(redis RedisClient) *FlightCache {
	return &FlightCache{
		redis: redis,
	}
}

func (c *FlightCache) GetLockKey(origin, destination string) string {
	return fmt.Sprintf("flight:lock:%s:%s", origin, destination)
}

func (c *FlightCache) GetCacheKey(origin, destination string) string {
	return fmt.Sprintf("flight:cache:%s:%s", origin, destination)
}

func (c *FlightCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *FlightCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *FlightCache) SetFlights(ctx context.Context,
	key string,
	flights []Flight,
	expiration time.Duration,
) error {
	if flights == nil {
		flights = []Flight{}
	}

	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("failed to marshal flights: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set flights: %w", err)
	}

	return nil
}

// GetFlights returns redis.Nil on a cache miss.
func (c *FlightCache) GetFlights(ctx context.Context, key string) ([]Flight, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var flights []Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flights: %w", err)
	}

	return flights, nil
}
