package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
	"github.com/stretchr/testify/mock"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// MockFlightCacher is a testify mock of FlightCacher.
type MockFlightCacher struct {
	mock.Mock
}

func NewMockFlightCacher(t mockT) *MockFlightCacher {
	m := &MockFlightCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFlightCacher) GetLockKey(origin, destination string) string {
	return m.Called(origin, destination).String(0)
}

func (m *MockFlightCacher) GetCacheKey(origin, destination string) string {
	return m.Called(origin, destination).String(0)
}

func (m *MockFlightCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	ret := m.Called(ctx, key, timeout)

	return ret.Bool(0), ret.Error(1)
}

func (m *MockFlightCacher) ReleaseLock(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockFlightCacher) GetFlights(ctx context.Context, key string) ([]flight.Flight, error) {
	ret := m.Called(ctx, key)

	var flights []flight.Flight
	if v := ret.Get(0); v != nil {
		flights = v.([]flight.Flight)
	}

	return flights, ret.Error(1)
}

func (m *MockFlightCacher) SetFlights(ctx context.Context, key string, flights []flight.Flight,
	expiration time.Duration) error {
	return m.Called(ctx, key, flights, expiration).Error(0)
}

// MockFlightProvider is a testify mock of flightprovider.FlightProvider.
type MockFlightProvider struct {
	mock.Mock
}

func NewMockFlightProvider(t mockT) *MockFlightProvider {
	m := &MockFlightProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFlightProvider) FindFlights(ctx context.Context, origin, destination string) ([]flight.Flight, error) {
	ret := m.Called(ctx, origin, destination)

	var flights []flight.Flight
	if v := ret.Get(0); v != nil {
		flights = v.([]flight.Flight)
	}

	return flights, ret.Error(1)
}
