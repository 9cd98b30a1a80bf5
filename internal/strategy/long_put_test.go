package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

func TestLongPut_SelectsByDelta(t *testing.T) {
	s := NewLongPut(LongPutConfig{})

	contracts := []*models.OptionContract{
		contract("P470", models.OptionPut, "470", withDelta(-0.35)),
		contract("P475", models.OptionPut, "475", withDelta(-0.48)),
		contract("P480", models.OptionPut, "480", withDelta(-0.70)),
	}

	signal := s.GenerateSignal(d("476"), contracts, tradingTime())
	assert.NotNil(t, signal)
	assert.Equal(t, "P475", signal.Contracts[0].Symbol)
	assert.Equal(t, models.StrategyLongPut, signal.Strategy)
	assert.Equal(t, 0.7, signal.Confidence)
}

func TestLongPut_FallsBackToStrikeProximity(t *testing.T) {
	s := NewLongPut(LongPutConfig{})

	contracts := []*models.OptionContract{
		contract("P470", models.OptionPut, "470"),
		contract("P480", models.OptionPut, "480"),
	}

	signal := s.GenerateSignal(d("478"), contracts, tradingTime())
	assert.NotNil(t, signal)
	assert.Equal(t, "P480", signal.Contracts[0].Symbol)
}

func TestLongPut_IgnoresCalls(t *testing.T) {
	s := NewLongPut(LongPutConfig{})

	onlyCalls := []*models.OptionContract{
		contract("C475", models.OptionCall, "475"),
	}

	assert.Nil(t, s.GenerateSignal(d("475"), onlyCalls, tradingTime()))
}

func TestLongPut_NoPremiumGate(t *testing.T) {
	s := NewLongPut(LongPutConfig{})

	// A rich premium would stop a long call; the put variant carries no
	// such gate and still signals.
	rich := []*models.OptionContract{
		contract("P475", models.OptionPut, "475", withQuote("14.90", "15.10")),
	}

	signal := s.GenerateSignal(d("475"), rich, tradingTime())
	assert.NotNil(t, signal)
}
