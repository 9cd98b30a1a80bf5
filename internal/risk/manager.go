package risk

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Manager holds the open-position ledger and daily P&L, and decides
// whether proposed orders are admissible against the configured limits.
// All methods are safe for concurrent use; the internal mutex is the
// single exclusion boundary for the ledger and the P&L accumulator.
type Manager struct {
	mu            sync.RWMutex
	accountValue  decimal.Decimal
	limits        Limits
	dailyPnL      decimal.Decimal
	openPositions []*models.Position
}

// Summary is a read-only snapshot of the manager's derived risk metrics.
type Summary struct {
	AccountValue        decimal.Decimal
	PortfolioRisk       decimal.Decimal
	PortfolioRiskPct    float64
	DailyPnL            decimal.Decimal
	AvailableRiskBudget decimal.Decimal
	MaxPossibleLoss     decimal.Decimal
	OpenPositions       int
}

// NewManager creates a risk manager for the given account value.
func NewManager(accountValue decimal.Decimal, limits Limits) *Manager {
	return &Manager{
		accountValue: accountValue,
		limits:       limits,
	}
}

// SetAccountValue refreshes the externally sourced account value.
func (m *Manager) SetAccountValue(accountValue decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountValue = accountValue
}

// AccountValue returns the current account value.
func (m *Manager) AccountValue() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accountValue
}

// portfolioRiskLocked sums long-position notional. Short positions
// contribute zero: only long-option premium is treated as at-risk capital.
func (m *Manager) portfolioRiskLocked() decimal.Decimal {
	total := decimal.Zero
	for _, p := range m.openPositions {
		if p.IsLong() {
			total = total.Add(p.NotionalValue())
		}
	}
	return total
}

func (m *Manager) portfolioRiskPctLocked() float64 {
	if m.accountValue.LessThanOrEqual(decimal.Zero) {
		return 0.0
	}
	pct, _ := m.portfolioRiskLocked().Div(m.accountValue).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// PortfolioRisk returns total at-risk capital across open positions.
func (m *Manager) PortfolioRisk() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.portfolioRiskLocked()
}

// PortfolioRiskPct returns portfolio risk as a percentage of account
// value, 0 when the account value is not positive.
func (m *Manager) PortfolioRiskPct() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.portfolioRiskPctLocked()
}

// AvailableRiskBudget returns the remaining dollar risk budget, floored
// at zero.
func (m *Manager) AvailableRiskBudget() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.availableRiskBudgetLocked()
}

func (m *Manager) availableRiskBudgetLocked() decimal.Decimal {
	maxRisk := m.accountValue.Mul(decimal.NewFromFloat(m.limits.MaxPortfolioRiskPct / 100))
	budget := maxRisk.Sub(m.portfolioRiskLocked())
	if budget.IsNegative() {
		return decimal.Zero
	}
	return budget
}

// MaxPossibleLoss returns the worst-case loss across open positions,
// which for long options is the premium paid.
func (m *Manager) MaxPossibleLoss() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.portfolioRiskLocked()
}

// CanTakeTrade evaluates the admissibility checks in fixed order and
// short-circuits at the first failure, returning its reason. Market
// orders carry no limit price and therefore skip the single-trade-risk
// and concentration checks.
func (m *Manager) CanTakeTrade(order *models.Order) (bool, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// 1. Daily loss limit
	dailyLossLimit := m.accountValue.Mul(decimal.NewFromFloat(m.limits.MaxDailyLossPct / 100))
	if m.dailyPnL.LessThan(dailyLossLimit.Neg()) {
		return false, "Daily loss limit reached"
	}

	// 2. Portfolio risk limit, against current state only
	if m.portfolioRiskPctLocked() >= m.limits.MaxPortfolioRiskPct {
		return false, "Portfolio risk limit reached"
	}

	// 3. Single-trade risk, priced orders only
	if order.LimitPrice != nil {
		tradeRisk := order.LimitPrice.Mul(decimal.NewFromInt(int64(order.Quantity))).
			Mul(decimal.NewFromInt(models.ContractMultiplier))
		maxTradeRisk := m.accountValue.Mul(decimal.NewFromFloat(m.limits.MaxSingleTradeRiskPct / 100))
		if tradeRisk.GreaterThan(maxTradeRisk) {
			return false, fmt.Sprintf("Trade risk $%s exceeds limit $%s", tradeRisk, maxTradeRisk)
		}
	}

	// 4. Position-size limit
	if order.Quantity > m.limits.MaxPositionSize {
		return false, fmt.Sprintf("Position size %d exceeds limit", order.Quantity)
	}

	// 5. Concentration limit, priced orders only
	if order.LimitPrice != nil {
		underlying := order.Contract.Underlying
		exposure := decimal.Zero
		for _, p := range m.openPositions {
			if p.Contract.Underlying == underlying {
				exposure = exposure.Add(p.NotionalValue())
			}
		}
		maxConcentration := m.accountValue.Mul(decimal.NewFromFloat(m.limits.MaxConcentrationPct / 100))
		newExposure := exposure.Add(order.LimitPrice.Mul(decimal.NewFromInt(int64(order.Quantity))).
			Mul(decimal.NewFromInt(models.ContractMultiplier)))
		if newExposure.GreaterThan(maxConcentration) {
			return false, fmt.Sprintf("Concentration limit reached for %s", underlying)
		}
	}

	return true, "Trade approved"
}

// UpdateDailyPnL adds a realized P&L delta to the daily accumulator.
func (m *Manager) UpdateDailyPnL(pnl decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dailyPnL = m.dailyPnL.Add(pnl)
}

// ResetDailyPnL zeros the accumulator. The orchestration layer calls
// this at the session boundary.
func (m *Manager) ResetDailyPnL() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dailyPnL = decimal.Zero
}

// DailyPnL returns the accumulated daily P&L.
func (m *Manager) DailyPnL() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dailyPnL
}

// AddPosition appends a filled position to the ledger.
func (m *Manager) AddPosition(position *models.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openPositions = append(m.openPositions, position)
}

// RemovePosition drops a closed position from the ledger, matching by
// identity. Removing a position that is not tracked is a no-op.
func (m *Manager) RemovePosition(position *models.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.openPositions {
		if p == position {
			m.openPositions = append(m.openPositions[:i], m.openPositions[i+1:]...)
			return
		}
	}
}

// OpenPositionCount returns the number of tracked positions.
func (m *Manager) OpenPositionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.openPositions)
}

// GetSummary returns a snapshot of the current risk metrics.
func (m *Manager) GetSummary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Summary{
		AccountValue:        m.accountValue,
		PortfolioRisk:       m.portfolioRiskLocked(),
		PortfolioRiskPct:    m.portfolioRiskPctLocked(),
		DailyPnL:            m.dailyPnL,
		AvailableRiskBudget: m.availableRiskBudgetLocked(),
		MaxPossibleLoss:     m.portfolioRiskLocked(),
		OpenPositions:       len(m.openPositions),
	}
}
