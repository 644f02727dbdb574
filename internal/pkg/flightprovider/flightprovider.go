package flightprovider

import (
	"context"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
)

// config for flight provider
type FlightProviderConfig struct {
	RoutesFile string
	PricesFile string
}

// FlightProvider returns the candidate flights of an origin/destination pair in a stable order.
type FlightProvider interface {
	FindFlights(ctx context.Context, origin, destination string) ([]flight.Flight, error)
}
