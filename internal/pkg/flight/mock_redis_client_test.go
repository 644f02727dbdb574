package flight

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient is a testify mock of RedisClient.
type MockRedisClient struct {
	mock.Mock
}

func NewMockRedisClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRedisClient {
	m := &MockRedisClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRedisClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	ret := m.Called(ctx, key, value, expiration)

	return ret.Get(0).(*redis.BoolCmd)
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := []interface{}{ctx}
	for _, key := range keys {
		args = append(args, key)
	}

	ret := m.Called(args...)

	return ret.Get(0).(*redis.IntCmd)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ret := m.Called(ctx, key, value, expiration)

	return ret.Get(0).(*redis.StatusCmd)
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	ret := m.Called(ctx, key)

	return ret.Get(0).(*redis.StringCmd)
}
