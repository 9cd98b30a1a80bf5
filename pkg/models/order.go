package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a trading instruction for a single contract leg. The broker
// fills in ID, Status, FilledQuantity and FilledPrice after submission;
// Validate is a pure function of the request fields.
type Order struct {
	Contract    *OptionContract
	Side        OrderSide
	Quantity    int
	Type        OrderType
	LimitPrice  *decimal.Decimal
	TimeInForce string
	CreatedAt   time.Time

	// Set by the broker after submission
	ID             string
	Status         string
	FilledQuantity int
	FilledPrice    *decimal.Decimal
}

// Validate checks order parameters: positive quantity, a limit price on
// limit orders, and a positive limit price whenever one is set.
func (o *Order) Validate() bool {
	if o.Quantity <= 0 {
		return false
	}
	if o.Type == OrderTypeLimit && o.LimitPrice == nil {
		return false
	}
	if o.LimitPrice != nil && o.LimitPrice.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return true
}

// Notional is the dollar exposure of the order at its limit price, or nil
// for unpriced (market) orders.
func (o *Order) Notional() *decimal.Decimal {
	if o.LimitPrice == nil {
		return nil
	}
	n := o.LimitPrice.Mul(decimal.NewFromInt(int64(o.Quantity))).Mul(multiplier)
	return &n
}
