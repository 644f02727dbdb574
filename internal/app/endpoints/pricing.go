package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/app/dto"
)

type PricingService interface {
	SearchPrices(ctx context.Context, req dto.SearchPriceRequest) (dto.SearchPriceResponse, error)
}

type PricingEndpoint struct {
	SearchPrices endpoint.Endpoint
}

func MakePricingEndpoint(service PricingService) PricingEndpoint {
	return PricingEndpoint{
		SearchPrices: makeSearchPricesEndpoint(service),
	}
}

func makeSearchPricesEndpoint(service PricingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchPriceRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		prices, err := service.SearchPrices(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pricing service: %w", err)
		}

		return prices, nil
	}
}
