package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionContract is a read-only snapshot of a single option quote.
// Instances are built fresh per chain snapshot and never mutated.
type OptionContract struct {
	Symbol       string
	Underlying   string
	Type         OptionType
	Strike       decimal.Decimal
	Expiration   time.Time
	Bid          *decimal.Decimal
	Ask          *decimal.Decimal
	LastPrice    *decimal.Decimal
	Volume       int64
	OpenInterest int64

	// Greeks, when the data feed supplies them
	ImpliedVolatility *float64
	Delta             *float64
	Gamma             *float64
	Theta             *float64
	Vega              *float64
}

var two = decimal.NewFromInt(2)

// MidPrice returns the bid/ask midpoint, falling back to the last trade
// price when either side of the quote is missing. Returns nil when the
// contract has no usable price at all.
func (c *OptionContract) MidPrice() *decimal.Decimal {
	if c.Bid != nil && c.Ask != nil {
		mid := c.Bid.Add(*c.Ask).Div(two)
		return &mid
	}
	return c.LastPrice
}

// Spread returns ask minus bid, or nil when either side is missing.
func (c *OptionContract) Spread() *decimal.Decimal {
	if c.Bid != nil && c.Ask != nil {
		spread := c.Ask.Sub(*c.Bid)
		return &spread
	}
	return nil
}

// IsZeroDTE reports whether the contract expires on the given date.
func (c *OptionContract) IsZeroDTE(reference time.Time) bool {
	cy, cm, cd := c.Expiration.Date()
	ry, rm, rd := reference.Date()
	return cy == ry && cm == rm && cd == rd
}

// Validate checks the quote is structurally sensible: symbols present,
// positive strike, non-negative bid/ask with bid not above ask. A quote
// with no bid and no ask is still valid.
func (c *OptionContract) Validate() bool {
	if c.Symbol == "" || c.Underlying == "" {
		return false
	}
	if c.Strike.LessThanOrEqual(decimal.Zero) {
		return false
	}
	if c.Bid != nil && c.Ask != nil {
		if c.Bid.IsNegative() || c.Ask.IsNegative() {
			return false
		}
		if c.Bid.GreaterThan(*c.Ask) {
			return false
		}
	}
	return true
}
