package broker

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Broker is the seam between the decision core and a brokerage. Failures
// surface as nil/empty returns, which callers treat as "cannot act this
// cycle" rather than as errors.
type Broker interface {
	Connect(ctx context.Context) error
	Disconnect()
	IsConnected() bool

	// Account and market data
	GetAccount() *AccountInfo
	GetUnderlyingPrice(symbol string) *decimal.Decimal
	GetOptionChain(underlying string, expiration *time.Time) []*models.OptionContract

	// Trading
	SubmitOrder(symbol string, quantity int, side models.OrderSide, orderType models.OrderType, limitPrice *decimal.Decimal, timeInForce string) string
	CancelOrder(orderID string) bool
	GetOrderStatus(orderID string) *OrderStatus
	GetPositions() []*models.Position
}

// AccountInfo is a broker account snapshot.
type AccountInfo struct {
	AccountID        string
	BuyingPower      decimal.Decimal
	Cash             decimal.Decimal
	PortfolioValue   decimal.Decimal
	Equity           decimal.Decimal
	PatternDayTrader bool
	TradingBlocked   bool
	OptionsApproved  bool
	OptionsLevel     int
}

// CanTradeOptions reports whether the account is approved for options
// and not trading-blocked.
func (a *AccountInfo) CanTradeOptions() bool {
	return a.OptionsApproved && !a.TradingBlocked
}

// OrderStatus is the broker's view of a submitted order.
type OrderStatus struct {
	OrderID        string
	Status         string
	FilledQuantity int
	FilledPrice    *decimal.Decimal
}
