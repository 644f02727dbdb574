package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/dto"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/pricing"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/search"
)

type FlightCacher interface {
	GetLockKey(origin, destination string) string
	GetCacheKey(origin, destination string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetFlights(ctx context.Context, key string) ([]flight.Flight, error)
	SetFlights(ctx context.Context, key string, flights []flight.Flight, expiration time.Duration) error
}

type PricingService struct {
	Provider              flightprovider.FlightProvider
	Cache                 FlightCacher
	Calculator            pricing.Calculator
	FlightCacheExpiration time.Duration
	FlightLockTimeout     time.Duration
	Clock                 func() time.Time
}

// NewPricingService builds the service; cache may be nil to always read the provider.
func NewPricingService(provider flightprovider.FlightProvider,
	cache FlightCacher, calculator pricing.Calculator,
	flightCacheExpiration time.Duration, flightLockTimeout time.Duration) *PricingService {
	return &PricingService{
		Provider:              provider,
		Cache:                 cache,
		Calculator:            calculator,
		FlightCacheExpiration: flightCacheExpiration,
		FlightLockTimeout:     flightLockTimeout,
		Clock:                 time.Now,
	}
}

// SearchPrices godoc
// @Summary      Search flight prices
// @Tags         Flights
// @Description  Price every flight of a route for a passenger count and departure date
// @Param        request  body      dto.SearchPriceRequest  true  "Search Criteria"
// @Success      200      {object}  dto.SearchPriceResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/prices [post]
func (s *PricingService) SearchPrices(
	ctx context.Context,
	req dto.SearchPriceRequest,
) (dto.SearchPriceResponse, error) {
	clock := s.clock()
	now := clock()

	route, err := flight.NewRoute(req.Origin, req.Destination)
	if err != nil {
		return dto.SearchPriceResponse{}, err
	}

	// one system per request, prices never leak between requests;
	// validation, pricing and metadata share one instant
	system := search.NewFlightSearchingSystem(route, s.Calculator,
		search.WithClock(func() time.Time { return now }))

	// fail before touching cache or dataset
	daysPriorDeparture, err := system.Validate(req.Passengers, req.DepartureDate)
	if err != nil {
		return dto.SearchPriceResponse{}, err
	}

	flights, cacheHit, err := s.getFlights(ctx, req.Origin, req.Destination)
	if err != nil {
		return dto.SearchPriceResponse{}, fmt.Errorf("failed to get flights for route: %w", err)
	}

	route.SetFlights(flights)

	if err := system.SearchFlights(req.Passengers, req.DepartureDate); err != nil {
		return dto.SearchPriceResponse{}, err
	}

	table, err := system.FlightResult()
	if err != nil {
		return dto.SearchPriceResponse{}, err
	}

	slog.DebugContext(ctx, "flight prices computed",
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
		slog.Any("price_table", table))

	prices := make([]dto.FlightPrice, 0, table.Len())
	for _, entry := range table.Entries() {
		prices = append(prices, dto.FlightPrice{
			FlightCode: entry.FlightCode,
			Price:      entry.Price,
		})
	}

	return dto.SearchPriceResponse{
		SearchCriteria: req,
		Metadata: dto.Metadata{
			TotalResults:       len(prices),
			DaysPriorDeparture: daysPriorDeparture,
			SearchTimeMs:       int(clock().Sub(now).Milliseconds()),
			CacheHit:           cacheHit,
		},
		Prices: prices,
	}, nil
}

// getFlights reads the route's flights from the cache and falls back to the provider.
// Cache errors are logged and never fail the request.
func (s *PricingService) getFlights(ctx context.Context,
	origin, destination string,
) ([]flight.Flight, bool, error) {
	if s.Cache == nil {
		flights, err := s.Provider.FindFlights(ctx, origin, destination)
		return flights, false, err
	}

	cacheKey := s.Cache.GetCacheKey(origin, destination)
	lockKey := s.Cache.GetLockKey(origin, destination)

	flights, err := s.Cache.GetFlights(ctx, cacheKey)
	if err == nil {
		return flights, true, nil
	}

	slog.WarnContext(ctx, "failed to get flights from cache", slog.String("error", err.Error()))

	flights, err = s.Provider.FindFlights(ctx, origin, destination)
	if err != nil {
		return nil, false, err
	}

	// concurrent misses on the same route all read the provider,
	// only the lock holder writes the cache
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.FlightLockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire flight cache lock", slog.String("error", err.Error()))
		return flights, false, nil
	}

	if !acquired {
		return flights, false, nil
	}

	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release flight cache lock", slog.String("error", err.Error()))
		}
	}()

	if err := s.Cache.SetFlights(ctx, cacheKey, flights, s.FlightCacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set flights to cache", slog.String("error", err.Error()))
	}

	return flights, false, nil
}

func (s *PricingService) clock() func() time.Time {
	if s.Clock == nil {
		return time.Now
	}

	return s.Clock
}
