package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

func TestStrangle_GenerateSignal(t *testing.T) {
	s := NewStrangle(StrangleConfig{})

	chain := []*models.OptionContract{
		contract("C480", models.OptionCall, "480"),
		contract("C490", models.OptionCall, "490"),
		contract("P460", models.OptionPut, "460"),
		contract("P470", models.OptionPut, "470"),
	}

	signal := s.GenerateSignal(d("475"), chain, tradingTime())

	assert.NotNil(t, signal)
	assert.Equal(t, models.StrategyStrangle, signal.Strategy)
	assert.Len(t, signal.Contracts, 2)
	// Closest to the money on each side: lowest OTM call, highest OTM put
	assert.Equal(t, "C480", signal.Contracts[0].Symbol)
	assert.Equal(t, "P470", signal.Contracts[1].Symbol)
	assert.Equal(t, 0.6, signal.Confidence)
}

func TestStrangle_RequiresBothSides(t *testing.T) {
	s := NewStrangle(StrangleConfig{})

	onlyCalls := []*models.OptionContract{
		contract("C480", models.OptionCall, "480"),
	}
	assert.Nil(t, s.GenerateSignal(d("475"), onlyCalls, tradingTime()))

	onlyPuts := []*models.OptionContract{
		contract("P470", models.OptionPut, "470"),
	}
	assert.Nil(t, s.GenerateSignal(d("475"), onlyPuts, tradingTime()))
}

func TestStrangle_RequiresOTMStrikes(t *testing.T) {
	s := NewStrangle(StrangleConfig{})

	// Calls exist but none strictly above the underlying; ATM does not
	// count as out of the money.
	chain := []*models.OptionContract{
		contract("C470", models.OptionCall, "470"),
		contract("C475", models.OptionCall, "475"),
		contract("P470", models.OptionPut, "470"),
	}

	assert.Nil(t, s.GenerateSignal(d("475"), chain, tradingTime()))
}
