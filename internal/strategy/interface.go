package strategy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Strategy defines the interface for 0DTE option strategies
type Strategy interface {
	// Name returns the name of the strategy
	Name() string

	// Type returns the strategy variant identifier
	Type() models.StrategyType

	// GenerateSignal analyzes the option chain and returns a candidate
	// trade, or nil when no suitable trade exists. A nil signal is a
	// normal outcome, never an error.
	GenerateSignal(underlyingPrice decimal.Decimal, contracts []*models.OptionContract, now time.Time) *models.Signal

	// CreateOrders materializes a signal into one order per leg
	CreateOrders(signal *models.Signal) ([]*models.Order, error)
}
