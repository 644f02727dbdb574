package dataset

import (
	"net/http"

	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
)

var ErrUnreadableDataset = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "dataset cannot be read",
	StatusCode: http.StatusInternalServerError,
}

var ErrMalformedRow = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "dataset row has too few fields",
	StatusCode: http.StatusInternalServerError,
}

var ErrMalformedPrice = exception.ApplicationError{
	Kind:       exception.KindData,
	Message:    "dataset price is not a decimal number",
	StatusCode: http.StatusInternalServerError,
}
