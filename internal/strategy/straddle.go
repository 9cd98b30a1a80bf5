package strategy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Straddle buys a call and a put at the same at-the-money strike,
// profiting from a large move in either direction.
type Straddle struct {
	Base
	maxTotalPremiumPct float64
}

// StraddleConfig configures the straddle strategy. Zero values fall
// back to the defaults: max total premium 4% of the underlying, max
// position size 10, cutoff enforced.
type StraddleConfig struct {
	MaxTotalPremiumPct float64
	MaxPositionSize    int
	DisableCutoff      bool
}

// NewStraddle creates a straddle strategy.
func NewStraddle(cfg StraddleConfig) *Straddle {
	if cfg.MaxTotalPremiumPct == 0 {
		cfg.MaxTotalPremiumPct = 4.0
	}
	if cfg.MaxPositionSize == 0 {
		cfg.MaxPositionSize = 10
	}
	return &Straddle{
		Base:               NewBase(cfg.MaxPositionSize, 0.6, !cfg.DisableCutoff),
		maxTotalPremiumPct: cfg.MaxTotalPremiumPct,
	}
}

// Name returns the name of the strategy
func (s *Straddle) Name() string {
	return "Straddle"
}

// Type returns the strategy variant identifier
func (s *Straddle) Type() models.StrategyType {
	return models.StrategyStraddle
}

// FindATMStrike returns the strike nearest the underlying price over
// calls and puts pooled, or nil for an empty contract set.
func (s *Straddle) FindATMStrike(contracts []*models.OptionContract, underlyingPrice decimal.Decimal) *decimal.Decimal {
	var best *decimal.Decimal
	var bestDiff decimal.Decimal
	for _, c := range contracts {
		diff := c.Strike.Sub(underlyingPrice).Abs()
		if best == nil || diff.LessThan(bestDiff) {
			strike := c.Strike
			best = &strike
			bestDiff = diff
		}
	}
	return best
}

// GenerateSignal emits a two-leg buy signal when both a call and a put
// exist at the ATM strike. A missing leg produces no signal.
func (s *Straddle) GenerateSignal(underlyingPrice decimal.Decimal, contracts []*models.OptionContract, now time.Time) *models.Signal {
	if !s.IsWithinTradingHours(now) {
		return nil
	}

	atmStrike := s.FindATMStrike(contracts, underlyingPrice)
	if atmStrike == nil {
		return nil
	}

	var atmCall, atmPut *models.OptionContract
	for _, c := range contracts {
		if !c.Strike.Equal(*atmStrike) {
			continue
		}
		switch c.Type {
		case models.OptionCall:
			atmCall = c
		case models.OptionPut:
			atmPut = c
		}
	}

	if atmCall == nil || atmPut == nil {
		return nil
	}

	return &models.Signal{
		Strategy:   s.Type(),
		Contracts:  []*models.OptionContract{atmCall, atmPut},
		Sides:      []models.OrderSide{models.SideBuy, models.SideBuy},
		Quantities: []int{1, 1},
		Confidence: 0.65,
		Reason:     fmt.Sprintf("Straddle on %s @ %s", atmCall.Underlying, atmStrike),
		Timestamp:  now,
	}
}
