// Package dataset joins a routes table and a prices table into flights.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flightprovider"
	"github.com/shopspring/decimal"
)

const (
	routeOriginField      = 0
	routeDestinationField = 1
	routeCodeField        = 2
	routeFields           = 3

	priceCodeField  = 0
	priceValueField = 1
	priceFields     = 2
)

var _ flightprovider.FlightProvider = (*Loader)(nil)

// Loader holds already parsed tables. Routes rows are origin, destination, route code;
// prices rows are route code, price.
type Loader struct {
	routes [][]string
	prices [][]string
}

func NewLoader(routes, prices [][]string) *Loader {
	return &Loader{routes: routes, prices: prices}
}

// LoadFiles reads both tables from the files named in cfg.
func LoadFiles(cfg flightprovider.FlightProviderConfig) (*Loader, error) {
	routes, err := ReadFile(cfg.RoutesFile)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	prices, err := ReadFile(cfg.PricesFile)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	return NewLoader(routes, prices), nil
}

// Flights returns one flight per prices row joined to a matching routes row.
// A routes row matches when its origin contains origin and its destination
// contains destination; the join on route code is exact.
func (l *Loader) Flights(origin, destination string) ([]flight.Flight, error) {
	flights := make([]flight.Flight, 0)

	for i, route := range l.routes {
		if len(route) < routeFields {
			return nil, ErrMalformedRow.WithCause(fmt.Errorf("routes row %d: %q", i+1, route))
		}

		if !strings.Contains(route[routeOriginField], origin) ||
			!strings.Contains(route[routeDestinationField], destination) {
			continue
		}

		routeCode := route[routeCodeField]

		for k, price := range l.prices {
			if len(price) < priceFields {
				return nil, ErrMalformedRow.WithCause(fmt.Errorf("prices row %d: %q", k+1, price))
			}

			if price[priceCodeField] != routeCode {
				continue
			}

			amount, err := decimal.NewFromString(price[priceValueField])
			if err != nil {
				return nil, ErrMalformedPrice.WithCause(fmt.Errorf("prices row %d: %w", k+1, err))
			}

			f, err := flight.NewFlight(routeCode, amount)
			if err != nil {
				return nil, fmt.Errorf("prices row %d: %w", k+1, err)
			}

			flights = append(flights, f)
		}
	}

	return flights, nil
}

// FindFlights implements flightprovider.FlightProvider.
func (l *Loader) FindFlights(ctx context.Context, origin, destination string) ([]flight.Flight, error) {
	flights, err := l.Flights(origin, destination)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "flights loaded from dataset",
		slog.String("origin", origin),
		slog.String("destination", destination),
		slog.Int("flights", len(flights)))

	return flights, nil
}
