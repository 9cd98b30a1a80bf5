package risk

import (
	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// DefaultStopLossPct is the assumed exit drawdown, as a percentage of
// premium, used to convert premium into dollar risk per contract.
const DefaultStopLossPct = 50.0

// PositionSizer computes bounded contract quantities from a per-trade
// risk budget. It is stateless beyond its configuration.
type PositionSizer struct {
	accountValue    decimal.Decimal
	riskPerTradePct float64
	maxContracts    int
}

// NewPositionSizer creates a sizer for the given account value.
func NewPositionSizer(accountValue decimal.Decimal, riskPerTradePct float64, maxContracts int) *PositionSizer {
	return &PositionSizer{
		accountValue:    accountValue,
		riskPerTradePct: riskPerTradePct,
		maxContracts:    maxContracts,
	}
}

// SetAccountValue updates the account value used for sizing.
func (s *PositionSizer) SetAccountValue(accountValue decimal.Decimal) {
	s.accountValue = accountValue
}

// CalculateSize returns the number of contracts whose stop-loss dollar
// risk fits the per-trade budget, clamped to the configured maximum.
// Returns 0 for unpriced contracts.
func (s *PositionSizer) CalculateSize(contract *models.OptionContract, stopLossPct float64) int {
	mid := contract.MidPrice()
	if mid == nil || mid.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	maxRisk := s.accountValue.Mul(decimal.NewFromFloat(s.riskPerTradePct / 100))

	// premium * stop-loss fraction * contract multiplier
	riskPerContract := mid.Mul(decimal.NewFromFloat(stopLossPct / 100)).
		Mul(decimal.NewFromInt(models.ContractMultiplier))

	if riskPerContract.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	size := int(maxRisk.Div(riskPerContract).IntPart())
	if size > s.maxContracts {
		return s.maxContracts
	}
	return size
}

// ValidateSize reports whether a quantity is acceptable: positive, within
// the configured maximum, priced, and with total notional not exceeding
// the account value.
func (s *PositionSizer) ValidateSize(quantity int, contract *models.OptionContract) bool {
	if quantity <= 0 {
		return false
	}
	if quantity > s.maxContracts {
		return false
	}
	mid := contract.MidPrice()
	if mid == nil {
		return false
	}

	positionValue := mid.Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(models.ContractMultiplier))
	return !positionValue.GreaterThan(s.accountValue)
}
