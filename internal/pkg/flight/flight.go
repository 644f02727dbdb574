package flight

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Flight is a priced, identified unit of a route's inventory.
// The zero value is not a valid flight; use NewFlight.
type Flight struct {
	code  string
	price decimal.Decimal
}

// NewFlight returns a flight or a data error when code is empty or price is not positive.
func NewFlight(code string, price decimal.Decimal) (Flight, error) {
	if code == "" {
		return Flight{}, ErrFlightCodeMissing
	}

	if !price.IsPositive() {
		return Flight{}, ErrFlightPriceNotPositive
	}

	return Flight{code: code, price: price}, nil
}

func (f Flight) Code() string {
	return f.code
}

func (f Flight) Price() decimal.Decimal {
	return f.price
}

// Equal compares code and numeric price, so 10 and 10.0 are the same price.
func (f Flight) Equal(other Flight) bool {
	return f.code == other.code && f.price.Equal(other.price)
}

type flightJSON struct {
	Code  string          `json:"flight_code"`
	Price decimal.Decimal `json:"price"`
}

func (f Flight) MarshalJSON() ([]byte, error) {
	return json.Marshal(flightJSON{Code: f.code, Price: f.price})
}

// UnmarshalJSON decodes a flight and re-applies the construction invariants.
func (f *Flight) UnmarshalJSON(data []byte) error {
	var raw flightJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrMalformedFlight.WithCause(err)
	}

	flight, err := NewFlight(raw.Code, raw.Price)
	if err != nil {
		return err
	}

	*f = flight

	return nil
}
