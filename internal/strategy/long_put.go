package strategy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// LongPut buys a single put, targeting the contract whose delta is
// closest to the configured (negative) target. Max loss is the premium
// paid. Unlike LongCall there is no premium gate.
type LongPut struct {
	Base
	targetDelta   float64
	maxPremiumPct float64
}

// LongPutConfig configures the long put strategy. Zero values fall back
// to the defaults: target delta -0.50, max premium 2% of the underlying,
// max position size 10, cutoff enforced.
type LongPutConfig struct {
	TargetDelta     float64
	MaxPremiumPct   float64
	MaxPositionSize int
	DisableCutoff   bool
}

// NewLongPut creates a long put strategy.
func NewLongPut(cfg LongPutConfig) *LongPut {
	if cfg.TargetDelta == 0 {
		cfg.TargetDelta = -0.50
	}
	if cfg.MaxPremiumPct == 0 {
		cfg.MaxPremiumPct = 2.0
	}
	if cfg.MaxPositionSize == 0 {
		cfg.MaxPositionSize = 10
	}
	return &LongPut{
		Base:          NewBase(cfg.MaxPositionSize, 0.6, !cfg.DisableCutoff),
		targetDelta:   cfg.TargetDelta,
		maxPremiumPct: cfg.MaxPremiumPct,
	}
}

// Name returns the name of the strategy
func (s *LongPut) Name() string {
	return "LongPut"
}

// Type returns the strategy variant identifier
func (s *LongPut) Type() models.StrategyType {
	return models.StrategyLongPut
}

// GenerateSignal selects the put closest to the target delta, falling
// back to the strike nearest the underlying when no contract carries a
// delta.
func (s *LongPut) GenerateSignal(underlyingPrice decimal.Decimal, contracts []*models.OptionContract, now time.Time) *models.Signal {
	if !s.IsWithinTradingHours(now) {
		return nil
	}

	puts := filterByType(contracts, models.OptionPut)
	if len(puts) == 0 {
		return nil
	}

	best := selectByDelta(puts, s.targetDelta)
	if best == nil {
		best = selectByStrikeProximity(puts, underlyingPrice)
	}
	if best == nil {
		return nil
	}

	return &models.Signal{
		Strategy:   s.Type(),
		Contracts:  []*models.OptionContract{best},
		Sides:      []models.OrderSide{models.SideBuy},
		Quantities: []int{1},
		Confidence: 0.7,
		Reason:     fmt.Sprintf("Long put on %s @ %s", best.Underlying, best.Strike),
		Timestamp:  now,
	}
}
