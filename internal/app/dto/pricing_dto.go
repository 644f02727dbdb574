package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
	"github.com/shopspring/decimal"
)

// SearchPriceRequest only carries structural rules; route, passenger and date
// rules belong to the search so their order and messages stay intact.
type SearchPriceRequest struct {
	Origin        string    `json:"origin" validate:"omitempty,alphanum,max=8"`
	Destination   string    `json:"destination" validate:"omitempty,alphanum,max=8"`
	Passengers    int       `json:"passengers" validate:"max=50"`
	DepartureDate time.Time `json:"departure_date"`
}

func (s *SearchPriceRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchPriceRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			Kind:       exception.KindValidation,
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type FlightPrice struct {
	FlightCode string          `json:"flight_code"`
	Price      decimal.Decimal `json:"price"`
}

type Metadata struct {
	TotalResults       int   `json:"total_results"`
	DaysPriorDeparture int64 `json:"days_prior_departure"`
	SearchTimeMs       int   `json:"search_time_ms"`
	CacheHit           bool  `json:"cache_hit"`
}

// SearchPriceResponse lists prices in the route's flight order.
type SearchPriceResponse struct {
	SearchCriteria SearchPriceRequest `json:"search_criteria"`
	Metadata       Metadata           `json:"metadata"`
	Prices         []FlightPrice      `json:"prices"`
}
