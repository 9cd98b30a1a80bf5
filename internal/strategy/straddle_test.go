package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

func straddleChain(strikes ...string) []*models.OptionContract {
	out := make([]*models.OptionContract, 0, 2*len(strikes))
	for _, strike := range strikes {
		out = append(out,
			contract("C"+strike, models.OptionCall, strike),
			contract("P"+strike, models.OptionPut, strike),
		)
	}
	return out
}

func TestStraddle_FindATMStrike(t *testing.T) {
	s := NewStraddle(StraddleConfig{})

	chain := straddleChain("465", "470", "475", "480", "485")
	atm := s.FindATMStrike(chain, d("473"))

	assert.NotNil(t, atm)
	assert.True(t, atm.Equal(d("475")))
}

func TestStraddle_FindATMStrike_Empty(t *testing.T) {
	s := NewStraddle(StraddleConfig{})
	assert.Nil(t, s.FindATMStrike(nil, d("473")))
}

func TestStraddle_GenerateSignal(t *testing.T) {
	s := NewStraddle(StraddleConfig{})

	chain := straddleChain("465", "470", "475", "480", "485")
	signal := s.GenerateSignal(d("473"), chain, tradingTime())

	assert.NotNil(t, signal)
	assert.Equal(t, models.StrategyStraddle, signal.Strategy)
	assert.Len(t, signal.Contracts, 2)
	assert.Equal(t, "C475", signal.Contracts[0].Symbol)
	assert.Equal(t, "P475", signal.Contracts[1].Symbol)
	assert.Equal(t, []models.OrderSide{models.SideBuy, models.SideBuy}, signal.Sides)
	assert.Equal(t, []int{1, 1}, signal.Quantities)
	assert.Equal(t, 0.65, signal.Confidence)
}

func TestStraddle_MissingLeg(t *testing.T) {
	s := NewStraddle(StraddleConfig{})

	// Drop the 475 put: the ATM strike still resolves to 475 but the
	// structure cannot be built.
	chain := straddleChain("465", "470", "480", "485")
	chain = append(chain, contract("C475", models.OptionCall, "475"))

	assert.Nil(t, s.GenerateSignal(d("473"), chain, tradingTime()))
}

func TestStraddle_EmptyChain(t *testing.T) {
	s := NewStraddle(StraddleConfig{})
	assert.Nil(t, s.GenerateSignal(d("473"), nil, tradingTime()))
}
