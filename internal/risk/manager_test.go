package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

func limitOrder(qty int, limitPrice string) *models.Order {
	return &models.Order{
		Contract:    pricedContract("2.50", "2.60"),
		Side:        models.SideBuy,
		Quantity:    qty,
		Type:        models.OrderTypeLimit,
		LimitPrice:  dp(limitPrice),
		TimeInForce: "day",
	}
}

func longPosition(entryPrice string, qty int) *models.Position {
	return &models.Position{
		Contract:   pricedContract("2.50", "2.60"),
		Side:       models.SideBuy,
		Quantity:   qty,
		EntryPrice: d(entryPrice),
		EntryTime:  time.Now(),
	}
}

func TestManager_CanTakeTrade_Approved(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	ok, reason := m.CanTakeTrade(limitOrder(2, "2.55"))
	assert.True(t, ok)
	assert.Equal(t, "Trade approved", reason)
}

func TestManager_CanTakeTrade_DailyLossLimit(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	// limit is 2% of 100000 = 2000; exactly at the limit still trades
	m.UpdateDailyPnL(d("-2000"))
	ok, _ := m.CanTakeTrade(limitOrder(1, "2.55"))
	assert.True(t, ok)

	m.UpdateDailyPnL(d("-0.01"))
	ok, reason := m.CanTakeTrade(limitOrder(1, "2.55"))
	assert.False(t, ok)
	assert.Equal(t, "Daily loss limit reached", reason)
}

func TestManager_CanTakeTrade_PortfolioRiskLimit(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	// 10 contracts at 5.00 = 5000 notional = 5% of account, at the limit
	m.AddPosition(longPosition("5.00", 10))

	ok, reason := m.CanTakeTrade(limitOrder(1, "2.55"))
	assert.False(t, ok)
	assert.Equal(t, "Portfolio risk limit reached", reason)
}

func TestManager_CanTakeTrade_SingleTradeRisk(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	// 2.55 * 10 * 100 = 2550 > 1000 (1% of account)
	ok, reason := m.CanTakeTrade(limitOrder(10, "2.55"))
	assert.False(t, ok)
	assert.Contains(t, reason, "exceeds limit")
	assert.Contains(t, reason, "2550")
	assert.Contains(t, reason, "1000")
}

func TestManager_CanTakeTrade_PositionSizeLimit(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	// 0.05 * 11 * 100 = 55, passes the single-trade check first
	ok, reason := m.CanTakeTrade(limitOrder(11, "0.05"))
	assert.False(t, ok)
	assert.Contains(t, reason, "Position size 11 exceeds limit")
}

func TestManager_CanTakeTrade_ConcentrationLimit(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxConcentrationPct = 0.001
	m := NewManager(d("100000"), limits)

	m.AddPosition(longPosition("0.01", 1))

	ok, reason := m.CanTakeTrade(limitOrder(1, "0.01"))
	assert.False(t, ok)
	assert.Contains(t, reason, "Concentration limit")
	assert.Contains(t, reason, "SPY")
}

func TestManager_CanTakeTrade_MarketOrderSkipsPricedChecks(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxConcentrationPct = 0.001
	m := NewManager(d("100000"), limits)
	m.AddPosition(longPosition("2.50", 2))

	// An unpriced order bypasses single-trade-risk and concentration
	market := &models.Order{
		Contract:    pricedContract("2.50", "2.60"),
		Side:        models.SideBuy,
		Quantity:    5,
		Type:        models.OrderTypeMarket,
		TimeInForce: "day",
	}

	ok, reason := m.CanTakeTrade(market)
	assert.True(t, ok)
	assert.Equal(t, "Trade approved", reason)
}

func TestManager_CanTakeTrade_EarlierCheckTakesPrecedence(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())
	m.UpdateDailyPnL(d("-5000"))

	// Both the daily loss limit and the position size limit are violated;
	// the daily loss message is authoritative.
	ok, reason := m.CanTakeTrade(limitOrder(50, "0.05"))
	assert.False(t, ok)
	assert.Equal(t, "Daily loss limit reached", reason)
}

func TestManager_PortfolioRisk_LongOnly(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	m.AddPosition(longPosition("2.00", 2)) // 400 notional
	short := &models.Position{
		Contract:   pricedContract("2.50", "2.60"),
		Side:       models.SideSell,
		Quantity:   3,
		EntryPrice: d("3.00"),
		EntryTime:  time.Now(),
	}
	m.AddPosition(short)

	// Only long premium counts as at-risk capital
	assert.True(t, m.PortfolioRisk().Equal(d("400")))
	assert.InDelta(t, 0.4, m.PortfolioRiskPct(), 1e-9)
	assert.True(t, m.MaxPossibleLoss().Equal(d("400")))
}

func TestManager_PortfolioRiskPct_NonPositiveAccount(t *testing.T) {
	m := NewManager(d("0"), DefaultLimits())
	m.AddPosition(longPosition("2.00", 1))

	assert.Equal(t, 0.0, m.PortfolioRiskPct())
}

func TestManager_AvailableRiskBudget(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	// 5% of 100000 = 5000 budget
	assert.True(t, m.AvailableRiskBudget().Equal(d("5000")))

	m.AddPosition(longPosition("10.00", 4)) // 4000 notional
	assert.True(t, m.AvailableRiskBudget().Equal(d("1000")))

	m.AddPosition(longPosition("30.00", 1)) // 3000 more, over budget
	assert.True(t, m.AvailableRiskBudget().Equal(d("0")))
}

func TestManager_DailyPnL(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	m.UpdateDailyPnL(d("150"))
	m.UpdateDailyPnL(d("-50"))
	assert.True(t, m.DailyPnL().Equal(d("100")))

	m.ResetDailyPnL()
	assert.True(t, m.DailyPnL().IsZero())
}

func TestManager_PositionLedger(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())

	p1 := longPosition("2.00", 1)
	p2 := longPosition("3.00", 2)

	m.AddPosition(p1)
	m.AddPosition(p2)
	assert.Equal(t, 2, m.OpenPositionCount())

	m.RemovePosition(p1)
	assert.Equal(t, 1, m.OpenPositionCount())

	// Removing a position that is not tracked is a no-op
	m.RemovePosition(p1)
	assert.Equal(t, 1, m.OpenPositionCount())
}

func TestManager_GetSummary(t *testing.T) {
	m := NewManager(d("100000"), DefaultLimits())
	m.AddPosition(longPosition("2.00", 2)) // 400 notional
	m.UpdateDailyPnL(d("-75"))

	s := m.GetSummary()
	assert.True(t, s.AccountValue.Equal(d("100000")))
	assert.True(t, s.PortfolioRisk.Equal(d("400")))
	assert.InDelta(t, 0.4, s.PortfolioRiskPct, 1e-9)
	assert.True(t, s.DailyPnL.Equal(d("-75")))
	assert.True(t, s.AvailableRiskBudget.Equal(d("4600")))
	assert.True(t, s.MaxPossibleLoss.Equal(d("400")))
	assert.Equal(t, 1, s.OpenPositions)
}
