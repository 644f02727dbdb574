package flight

import (
	"net/http"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
)

var ErrRouteNotDefined = exception.ApplicationError{
	Kind:       exception.KindRoute,
	Message:    "A route and a destination must be provided for the research",
	StatusCode: http.StatusBadRequest,
}

var ErrFlightCodeMissing = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "Flight code cannot be omitted",
	StatusCode: http.StatusInternalServerError,
}

var ErrFlightPriceNotPositive = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "Price must be greater than zero",
	StatusCode: http.StatusInternalServerError,
}

var ErrMalformedFlight = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "malformed flight data",
	StatusCode: http.StatusInternalServerError,
}
