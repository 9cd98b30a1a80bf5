package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var multiplier = decimal.NewFromInt(ContractMultiplier)

// Position is an open options position tracked by the risk manager's
// ledger from fill until it is explicitly removed.
type Position struct {
	Contract   *OptionContract
	Side       OrderSide
	Quantity   int
	EntryPrice decimal.Decimal
	EntryTime  time.Time
}

// IsLong reports whether the position was opened with a buy.
func (p *Position) IsLong() bool {
	return p.Side == SideBuy
}

// NotionalValue is entry price times quantity times the contract multiplier.
func (p *Position) NotionalValue() decimal.Decimal {
	return p.EntryPrice.Mul(decimal.NewFromInt(int64(p.Quantity))).Mul(multiplier)
}

// UnrealizedPnL computes the mark-to-market P&L at the given price,
// sign-flipped for short positions.
func (p *Position) UnrealizedPnL(currentPrice decimal.Decimal) decimal.Decimal {
	diff := currentPrice.Sub(p.EntryPrice)
	if !p.IsLong() {
		diff = diff.Neg()
	}
	return diff.Mul(decimal.NewFromInt(int64(p.Quantity))).Mul(multiplier)
}
