package pricing

import "errors"

var (
	ErrNoTiers                   = errors.New("pricing: at least one tier is required")
	ErrInvalidTier               = errors.New("pricing: tier thresholds and percentages must not be negative")
	ErrDuplicateTier             = errors.New("pricing: tier thresholds must be unique")
	ErrTiersNotCoveringDeparture = errors.New("pricing: the lowest tier threshold must be 0 days")
)
