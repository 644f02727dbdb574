package search

import (
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one row of a PriceTable.
type Entry struct {
	FlightCode string
	Price      decimal.Decimal
}

// PriceTable maps flight codes to prices in insertion order.
// Putting an existing code replaces its price and keeps its position.
type PriceTable struct {
	prices *orderedmap.OrderedMap[string, decimal.Decimal]
}

func NewPriceTable() *PriceTable {
	return &PriceTable{prices: orderedmap.New[string, decimal.Decimal]()}
}

func (t *PriceTable) Put(flightCode string, price decimal.Decimal) {
	t.prices.Set(flightCode, price)
}

func (t *PriceTable) Get(flightCode string) (decimal.Decimal, bool) {
	return t.prices.Get(flightCode)
}

func (t *PriceTable) Len() int {
	return t.prices.Len()
}

func (t *PriceTable) IsEmpty() bool {
	return t.prices.Len() == 0
}

func (t *PriceTable) Keys() []string {
	keys := make([]string, 0, t.prices.Len())
	for pair := t.prices.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

func (t *PriceTable) Entries() []Entry {
	entries := make([]Entry, 0, t.prices.Len())
	for pair := t.prices.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{FlightCode: pair.Key, Price: pair.Value})
	}

	return entries
}

// Clone returns an independent copy with the same order.
func (t *PriceTable) Clone() *PriceTable {
	clone := NewPriceTable()
	for pair := t.prices.Oldest(); pair != nil; pair = pair.Next() {
		clone.prices.Set(pair.Key, pair.Value)
	}

	return clone
}

// Equal reports whether both tables hold the same codes, prices and order.
func (t *PriceTable) Equal(other *PriceTable) bool {
	if t.Len() != other.Len() {
		return false
	}

	mine, theirs := t.Entries(), other.Entries()
	for i := range mine {
		if mine[i].FlightCode != theirs[i].FlightCode || !mine[i].Price.Equal(theirs[i].Price) {
			return false
		}
	}

	return true
}

// MarshalJSON renders the table as a JSON object keyed in insertion order.
func (t *PriceTable) MarshalJSON() ([]byte, error) {
	return t.prices.MarshalJSON()
}
