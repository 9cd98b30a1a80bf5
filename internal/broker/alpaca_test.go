package broker

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

func testConfig() *Config {
	return &Config{
		APIKey:    "key",
		APISecret: "secret",
		BaseURL:   "https://paper-api.alpaca.markets",
	}
}

func connectedBroker(t *testing.T) *AlpacaBroker {
	t.Helper()
	b := NewAlpacaBroker(testConfig())
	assert.NoError(t, b.Connect(context.Background()))
	return b
}

func TestConfig_IsPaper(t *testing.T) {
	assert.True(t, testConfig().IsPaper())

	live := &Config{BaseURL: "https://api.alpaca.markets"}
	assert.False(t, live.IsPaper())
}

func TestConfigFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("ALPACA_API_KEY", "")
	t.Setenv("ALPACA_API_SECRET", "")

	cfg, err := ConfigFromEnv()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ALPACA_API_KEY", "key")
	t.Setenv("ALPACA_API_SECRET", "secret")
	t.Setenv("ALPACA_BASE_URL", "")

	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, "https://paper-api.alpaca.markets", cfg.BaseURL)
}

func TestAlpacaBroker_DisconnectedSemantics(t *testing.T) {
	b := NewAlpacaBroker(testConfig())

	assert.False(t, b.IsConnected())
	assert.Nil(t, b.GetAccount())
	assert.Nil(t, b.GetUnderlyingPrice("SPY"))
	assert.Empty(t, b.GetOptionChain("SPY", nil))
	assert.Empty(t, b.SubmitOrder("SPY241115C00475000", 1, models.SideBuy, models.OrderTypeMarket, nil, "day"))
	assert.False(t, b.CancelOrder("order-1"))
	assert.Nil(t, b.GetOrderStatus("order-1"))
	assert.Empty(t, b.GetPositions())
}

func TestAlpacaBroker_ConnectAndAccount(t *testing.T) {
	b := connectedBroker(t)

	assert.True(t, b.IsConnected())

	account := b.GetAccount()
	assert.NotNil(t, account)
	assert.True(t, account.CanTradeOptions())
	assert.True(t, account.PortfolioValue.Equal(decimal.NewFromInt(100000)))

	b.Disconnect()
	assert.False(t, b.IsConnected())
	assert.Nil(t, b.GetAccount())
}

func TestAccountInfo_CanTradeOptions(t *testing.T) {
	blocked := &AccountInfo{OptionsApproved: true, TradingBlocked: true}
	assert.False(t, blocked.CanTradeOptions())

	unapproved := &AccountInfo{OptionsApproved: false}
	assert.False(t, unapproved.CanTradeOptions())
}

func TestAlpacaBroker_SubmitOrderValidation(t *testing.T) {
	b := connectedBroker(t)

	limit := decimal.NewFromFloat(2.55)

	assert.NotEmpty(t, b.SubmitOrder("SPY241115C00475000", 1, models.SideBuy, models.OrderTypeLimit, &limit, "day"))
	assert.Empty(t, b.SubmitOrder("SPY241115C00475000", 0, models.SideBuy, models.OrderTypeLimit, &limit, "day"))
	assert.Empty(t, b.SubmitOrder("SPY241115C00475000", 1, models.OrderSide("hold"), models.OrderTypeLimit, &limit, "day"))
	assert.Empty(t, b.SubmitOrder("SPY241115C00475000", 1, models.SideBuy, models.OrderTypeLimit, nil, "day"))
	assert.NotEmpty(t, b.SubmitOrder("SPY241115C00475000", 1, models.SideSell, models.OrderTypeMarket, nil, "day"))
}

func TestAlpacaBroker_ZeroDTECutoff(t *testing.T) {
	b := NewAlpacaBroker(testConfig())

	before := time.Date(2024, 11, 15, 15, 14, 59, 0, time.UTC)
	at := time.Date(2024, 11, 15, 15, 15, 0, 0, time.UTC)

	assert.True(t, b.CanTradeZeroDTE(before))
	assert.False(t, b.CanTradeZeroDTE(at))

	assert.Positive(t, b.TimeToCutoff(before))
	assert.LessOrEqual(t, b.TimeToCutoff(at), time.Duration(0))
}

func TestAlpacaBroker_IsMarketOpen(t *testing.T) {
	b := NewAlpacaBroker(testConfig())

	assert.False(t, b.IsMarketOpen(time.Date(2024, 11, 15, 9, 29, 0, 0, time.UTC)))
	assert.True(t, b.IsMarketOpen(time.Date(2024, 11, 15, 9, 30, 0, 0, time.UTC)))
	assert.True(t, b.IsMarketOpen(time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, b.IsMarketOpen(time.Date(2024, 11, 15, 16, 0, 0, 0, time.UTC)))
	assert.False(t, b.IsMarketOpen(time.Date(2024, 11, 15, 16, 1, 0, 0, time.UTC)))
}
