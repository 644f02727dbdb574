package search

import (
	"net/http"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/flight"
)

// ErrRouteNotDefined is shared with route construction so both report the same message.
var ErrRouteNotDefined = flight.ErrRouteNotDefined

var ErrInvalidPassengerCount = exception.ApplicationError{
	Kind:       exception.KindValidation,
	Message:    "The number of passengers has to be above zero",
	StatusCode: http.StatusBadRequest,
}

var ErrDepartureDateInPast = exception.ApplicationError{
	Kind:       exception.KindValidation,
	Message:    "The departure date is mandatory and it should be ahead the current date",
	StatusCode: http.StatusBadRequest,
}

var ErrNoFlightsAvailable = exception.ApplicationError{
	Kind:       exception.KindNotFound,
	Message:    "No flights available for the defined route",
	StatusCode: http.StatusNotFound,
}
