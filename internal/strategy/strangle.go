package strategy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Strangle buys an out-of-the-money call and put at different strikes.
// Cheaper than a straddle but needs a larger move to pay off. Selection
// is strike-proximity only; the delta targets are carried in the config
// but do not influence it.
type Strangle struct {
	Base
	callDelta float64
	putDelta  float64
}

// StrangleConfig configures the strangle strategy. Zero values fall
// back to the defaults: call delta 0.30, put delta -0.30, max position
// size 10, cutoff enforced.
type StrangleConfig struct {
	CallDelta       float64
	PutDelta        float64
	MaxPositionSize int
	DisableCutoff   bool
}

// NewStrangle creates a strangle strategy.
func NewStrangle(cfg StrangleConfig) *Strangle {
	if cfg.CallDelta == 0 {
		cfg.CallDelta = 0.30
	}
	if cfg.PutDelta == 0 {
		cfg.PutDelta = -0.30
	}
	if cfg.MaxPositionSize == 0 {
		cfg.MaxPositionSize = 10
	}
	return &Strangle{
		Base:      NewBase(cfg.MaxPositionSize, 0.6, !cfg.DisableCutoff),
		callDelta: cfg.CallDelta,
		putDelta:  cfg.PutDelta,
	}
}

// Name returns the name of the strategy
func (s *Strangle) Name() string {
	return "Strangle"
}

// Type returns the strategy variant identifier
func (s *Strangle) Type() models.StrategyType {
	return models.StrategyStrangle
}

// GenerateSignal pairs the OTM call with the smallest strike and the
// OTM put with the largest strike, the legs closest to the money on
// each side. Either side empty produces no signal.
func (s *Strangle) GenerateSignal(underlyingPrice decimal.Decimal, contracts []*models.OptionContract, now time.Time) *models.Signal {
	if !s.IsWithinTradingHours(now) {
		return nil
	}

	calls := filterByType(contracts, models.OptionCall)
	puts := filterByType(contracts, models.OptionPut)
	if len(calls) == 0 || len(puts) == 0 {
		return nil
	}

	var selectedCall, selectedPut *models.OptionContract
	for _, c := range calls {
		if !c.Strike.GreaterThan(underlyingPrice) {
			continue
		}
		if selectedCall == nil || c.Strike.LessThan(selectedCall.Strike) {
			selectedCall = c
		}
	}
	for _, p := range puts {
		if !p.Strike.LessThan(underlyingPrice) {
			continue
		}
		if selectedPut == nil || p.Strike.GreaterThan(selectedPut.Strike) {
			selectedPut = p
		}
	}

	if selectedCall == nil || selectedPut == nil {
		return nil
	}

	return &models.Signal{
		Strategy:   s.Type(),
		Contracts:  []*models.OptionContract{selectedCall, selectedPut},
		Sides:      []models.OrderSide{models.SideBuy, models.SideBuy},
		Quantities: []int{1, 1},
		Confidence: 0.6,
		Reason:     fmt.Sprintf("Strangle: call@%s, put@%s", selectedCall.Strike, selectedPut.Strike),
		Timestamp:  now,
	}
}
