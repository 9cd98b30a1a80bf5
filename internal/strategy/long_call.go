package strategy

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// LongCall buys a single call, targeting the contract whose delta is
// closest to the configured target. Max loss is the premium paid.
type LongCall struct {
	Base
	targetDelta   float64
	maxPremiumPct float64
}

// LongCallConfig configures the long call strategy. Zero values fall
// back to the defaults: target delta 0.50, max premium 2% of the
// underlying, max position size 10, cutoff enforced.
type LongCallConfig struct {
	TargetDelta     float64
	MaxPremiumPct   float64
	MaxPositionSize int
	DisableCutoff   bool
}

// NewLongCall creates a long call strategy.
func NewLongCall(cfg LongCallConfig) *LongCall {
	if cfg.TargetDelta == 0 {
		cfg.TargetDelta = 0.50
	}
	if cfg.MaxPremiumPct == 0 {
		cfg.MaxPremiumPct = 2.0
	}
	if cfg.MaxPositionSize == 0 {
		cfg.MaxPositionSize = 10
	}
	return &LongCall{
		Base:          NewBase(cfg.MaxPositionSize, 0.6, !cfg.DisableCutoff),
		targetDelta:   cfg.TargetDelta,
		maxPremiumPct: cfg.MaxPremiumPct,
	}
}

// Name returns the name of the strategy
func (s *LongCall) Name() string {
	return "LongCall"
}

// Type returns the strategy variant identifier
func (s *LongCall) Type() models.StrategyType {
	return models.StrategyLongCall
}

// GenerateSignal selects the call closest to the target delta, falling
// back to the strike nearest the underlying when no contract carries a
// delta. Rich premiums (above maxPremiumPct of the underlying) produce
// no signal.
func (s *LongCall) GenerateSignal(underlyingPrice decimal.Decimal, contracts []*models.OptionContract, now time.Time) *models.Signal {
	if !s.IsWithinTradingHours(now) {
		return nil
	}

	calls := filterByType(contracts, models.OptionCall)
	if len(calls) == 0 {
		return nil
	}

	best := selectByDelta(calls, s.targetDelta)
	if best == nil {
		best = selectByStrikeProximity(calls, underlyingPrice)
	}
	if best == nil {
		return nil
	}

	// Premium gate: skip when the contract costs too much relative to
	// the underlying.
	if mid := best.MidPrice(); mid != nil {
		premiumPct, _ := mid.Div(underlyingPrice).Mul(decimal.NewFromInt(100)).Float64()
		if premiumPct > s.maxPremiumPct {
			return nil
		}
	}

	return &models.Signal{
		Strategy:   s.Type(),
		Contracts:  []*models.OptionContract{best},
		Sides:      []models.OrderSide{models.SideBuy},
		Quantities: []int{1},
		Confidence: 0.7,
		Reason:     fmt.Sprintf("Long call on %s @ %s", best.Underlying, best.Strike),
		Timestamp:  now,
	}
}

// filterByType returns the contracts of the given option type,
// preserving input order.
func filterByType(contracts []*models.OptionContract, optionType models.OptionType) []*models.OptionContract {
	out := make([]*models.OptionContract, 0, len(contracts))
	for _, c := range contracts {
		if c.Type == optionType {
			out = append(out, c)
		}
	}
	return out
}

// selectByDelta picks the contract whose delta is nearest the target,
// or nil when no contract carries a delta. Ties keep the earlier
// contract.
func selectByDelta(contracts []*models.OptionContract, targetDelta float64) *models.OptionContract {
	var best *models.OptionContract
	bestDiff := math.Inf(1)
	for _, c := range contracts {
		if c.Delta == nil {
			continue
		}
		diff := math.Abs(*c.Delta - targetDelta)
		if diff < bestDiff {
			bestDiff = diff
			best = c
		}
	}
	return best
}

// selectByStrikeProximity picks the contract whose strike is nearest the
// underlying price. Ties keep the earlier contract.
func selectByStrikeProximity(contracts []*models.OptionContract, underlyingPrice decimal.Decimal) *models.OptionContract {
	var best *models.OptionContract
	var bestDiff decimal.Decimal
	for _, c := range contracts {
		diff := c.Strike.Sub(underlyingPrice).Abs()
		if best == nil || diff.LessThan(bestDiff) {
			bestDiff = diff
			best = c
		}
	}
	return best
}
