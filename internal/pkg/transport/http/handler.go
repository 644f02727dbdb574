package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
)

// MakeHandlerFunc serves a go-kit endpoint with the given codec, mapping errors through ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc, kithttp.ServerErrorEncoder(ErrorResponse)).ServeHTTP
}

// DecodeRequest decodes a JSON body into *T and runs its Bind hook when T implements render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		return nil, exception.ApplicationError{
			Kind:       exception.KindValidation,
			Message:    "invalid request body",
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}

	if binder, ok := any(&req).(render.Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, err
		}
	}

	return &req, nil
}
