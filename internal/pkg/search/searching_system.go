// Package search validates a pricing request against a route and builds the
// resulting price table.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/pricing"
)

const millisecondsPerDay = int64(24 * time.Hour / time.Millisecond)

type Option func(*FlightSearchingSystem)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *FlightSearchingSystem) {
		if now != nil {
			s.now = now
		}
	}
}

// FlightSearchingSystem prices every flight of a route for a passenger count and
// departure date. Results accumulate in one price table for the lifetime of the
// instance; it is not safe for concurrent use.
type FlightSearchingSystem struct {
	route      *flight.Route
	calculator pricing.Calculator
	now        func() time.Time
	prices     *PriceTable
}

// NewFlightSearchingSystem uses the default tiered policy when calculator is nil.
func NewFlightSearchingSystem(route *flight.Route, calculator pricing.Calculator,
	opts ...Option) *FlightSearchingSystem {
	if calculator == nil {
		calculator = pricing.NewDefaultCalculator()
	}

	s := &FlightSearchingSystem{
		route:      route,
		calculator: calculator,
		now:        time.Now,
		prices:     NewPriceTable(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SearchFlights validates the request and writes one price per route flight,
// overwriting codes already present. Nothing is written when validation fails.
func (s *FlightSearchingSystem) SearchFlights(passengerCount int, departureDate time.Time) error {
	daysPriorDeparture, err := s.Validate(passengerCount, departureDate)
	if err != nil {
		return err
	}

	for _, f := range s.route.Flights() {
		discountedPrice := s.calculator.DiscountedPrice(passengerCount, daysPriorDeparture, f.Price())
		s.prices.Put(f.Code(), discountedPrice)
	}

	return nil
}

// Validate checks route, passenger count and departure date in that order and
// returns the days prior departure of a valid request.
func (s *FlightSearchingSystem) Validate(passengerCount int, departureDate time.Time) (int64, error) {
	if !s.route.IsDefined() {
		return 0, ErrRouteNotDefined
	}

	if passengerCount <= 0 {
		return 0, ErrInvalidPassengerCount
	}

	daysPriorDeparture := s.DaysPriorDeparture(departureDate)
	if daysPriorDeparture < 0 {
		return 0, ErrDepartureDateInPast
	}

	return daysPriorDeparture, nil
}

// DaysPriorDeparture truncates the millisecond distance to whole days toward zero,
// so a departure less than a day in the past counts as 0.
func (s *FlightSearchingSystem) DaysPriorDeparture(departureDate time.Time) int64 {
	return (departureDate.UnixMilli() - s.now().UnixMilli()) / millisecondsPerDay
}

// FlightResult returns a snapshot of the accumulated prices.
func (s *FlightSearchingSystem) FlightResult() (*PriceTable, error) {
	if s.prices.IsEmpty() {
		return nil, ErrNoFlightsAvailable
	}

	return s.prices.Clone(), nil
}

func (s *FlightSearchingSystem) Route() *flight.Route {
	return s.route
}

// SetRoute keeps the prices accumulated so far.
func (s *FlightSearchingSystem) SetRoute(route *flight.Route) {
	s.route = route
}

func (s *FlightSearchingSystem) String() string {
	var sb strings.Builder
	for _, entry := range s.prices.Entries() {
		fmt.Fprintf(&sb, "%s, %s\n", entry.FlightCode, entry.Price)
	}

	return sb.String()
}
