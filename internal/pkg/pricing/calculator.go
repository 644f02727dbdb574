// Package pricing holds the discount policy applied to a flight's base price.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Calculator maps (passengers, days prior departure, base price) to a final price.
// Implementations must be deterministic and free of side effects.
type Calculator interface {
	DiscountedPrice(passengerCount int, daysPriorDeparture int64, basePrice decimal.Decimal) decimal.Decimal
}

// CalculatorFunc adapts a plain function to Calculator.
type CalculatorFunc func(passengerCount int, daysPriorDeparture int64, basePrice decimal.Decimal) decimal.Decimal

func (f CalculatorFunc) DiscountedPrice(passengerCount int, daysPriorDeparture int64,
	basePrice decimal.Decimal) decimal.Decimal {
	return f(passengerCount, daysPriorDeparture, basePrice)
}

// Tier charges Percentage of the base price when the departure is at least MinDays away.
type Tier struct {
	MinDays    int64
	Percentage decimal.Decimal
}

// DefaultTiers is the standard curve: early bookings are discounted,
// last minute bookings pay a surcharge.
func DefaultTiers() []Tier {
	return []Tier{
		{MinDays: 31, Percentage: decimal.NewFromInt(80)},
		{MinDays: 16, Percentage: decimal.NewFromInt(100)},
		{MinDays: 3, Percentage: decimal.NewFromInt(120)},
		{MinDays: 0, Percentage: decimal.NewFromInt(150)},
	}
}

// TieredCalculator prices per passenger with a percentage picked by days prior departure.
type TieredCalculator struct {
	tiers []Tier
}

// NewTieredCalculator validates tiers and orders them from the farthest threshold down.
func NewTieredCalculator(tiers []Tier) (*TieredCalculator, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinDays > sorted[j].MinDays
	})

	for i, tier := range sorted {
		if tier.MinDays < 0 || tier.Percentage.IsNegative() {
			return nil, ErrInvalidTier
		}

		if i > 0 && sorted[i-1].MinDays == tier.MinDays {
			return nil, ErrDuplicateTier
		}
	}

	if sorted[len(sorted)-1].MinDays != 0 {
		return nil, ErrTiersNotCoveringDeparture
	}

	return &TieredCalculator{tiers: sorted}, nil
}

// NewDefaultCalculator returns the calculator for DefaultTiers.
func NewDefaultCalculator() *TieredCalculator {
	calculator, err := NewTieredCalculator(DefaultTiers())
	if err != nil {
		panic(err)
	}

	return calculator
}

func (c *TieredCalculator) DiscountedPrice(passengerCount int, daysPriorDeparture int64,
	basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.
		Mul(c.Percentage(daysPriorDeparture)).
		Shift(-2).
		Mul(decimal.NewFromInt(int64(passengerCount)))
}

// Percentage returns the percentage charged for the given days prior departure.
// Values below every threshold fall into the closest-to-departure tier.
func (c *TieredCalculator) Percentage(daysPriorDeparture int64) decimal.Decimal {
	for _, tier := range c.tiers {
		if daysPriorDeparture >= tier.MinDays {
			return tier.Percentage
		}
	}

	return c.tiers[len(c.tiers)-1].Percentage
}

// Tiers returns the tiers ordered from the farthest threshold down.
func (c *TieredCalculator) Tiers() []Tier {
	tiers := make([]Tier, len(c.tiers))
	copy(tiers, c.tiers)

	return tiers
}
