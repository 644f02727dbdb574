package service

import (
	"github.com/ijalalfrz/flight-ticket-pricing-service/internal/pkg/search"
)

var ErrNoFlightsFound = search.ErrNoFlightsAvailable
