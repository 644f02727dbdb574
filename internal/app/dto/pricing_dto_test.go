//go:build unit

package dto

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
)

func TestSearchPriceRequest_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req SearchPriceRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
				assert.Equal(t, exception.KindValidation, exception.KindOf(err))
			}
		}
	}

	departure := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid_request", validateRequest(SearchPriceRequest{
		Origin:        "AMS",
		Destination:   "FRA",
		Passengers:    1,
		DepartureDate: departure,
	}, false, ""))

	// left to the search so the route error message reaches the client
	t.Run("empty_route_passes", validateRequest(SearchPriceRequest{
		Passengers:    1,
		DepartureDate: departure,
	}, false, ""))

	t.Run("non_positive_passengers_pass", validateRequest(SearchPriceRequest{
		Origin:      "AMS",
		Destination: "FRA",
		Passengers:  -2,
	}, false, ""))

	t.Run("origin_not_alphanumeric", validateRequest(SearchPriceRequest{
		Origin:      "AM-S",
		Destination: "FRA",
		Passengers:  1,
	}, true, "origin can only contain alphanumeric characters"))

	t.Run("destination_too_long", validateRequest(SearchPriceRequest{
		Origin:      "AMS",
		Destination: "FRANKFURTM",
		Passengers:  1,
	}, true, "destination must be a maximum of 8 characters in length"))

	t.Run("too_many_passengers", validateRequest(SearchPriceRequest{
		Origin:      "AMS",
		Destination: "FRA",
		Passengers:  51,
	}, true, "passengers must be 50 or less"))
}

func TestSearchPriceRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(req SearchPriceRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_bind", bindRequest(SearchPriceRequest{Origin: "AMS", Destination: "FRA", Passengers: 1}, false))
	t.Run("invalid_bind", bindRequest(SearchPriceRequest{Origin: "A M S"}, true))
}
