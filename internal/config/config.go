package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    string

	Broker struct {
		APIKey    string
		APISecret string
		BaseURL   string
	}

	Trading struct {
		Underlying      string
		Interval        time.Duration
		Strategies      []string
		DisableCutoff   bool
		RiskPerTradePct float64
		StopLossPct     float64
	}

	Risk struct {
		MaxPortfolioRiskPct      float64
		MaxPositionSize          int
		MaxDailyLossPct          float64
		MaxSingleTradeRiskPct    float64
		MinBuyingPowerReservePct float64
		MaxConcentrationPct      float64
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Notifications struct {
		TelegramToken  string
		TelegramChatID string
	}
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	cfg.Broker.APIKey = getEnv("ALPACA_API_KEY", "")
	cfg.Broker.APISecret = getEnv("ALPACA_API_SECRET", "")
	cfg.Broker.BaseURL = getEnv("ALPACA_BASE_URL", "https://paper-api.alpaca.markets")

	cfg.Trading.Underlying = getEnv("UNDERLYING_SYMBOL", "SPY")
	cfg.Trading.Interval = getEnvDuration("DECISION_INTERVAL", time.Minute)
	cfg.Trading.Strategies = getEnvList("STRATEGIES", []string{"long_call", "long_put", "straddle", "strangle"})
	cfg.Trading.DisableCutoff = getEnvBool("DISABLE_0DTE_CUTOFF", false)
	cfg.Trading.RiskPerTradePct = getEnvFloat("RISK_PER_TRADE_PCT", 1.0)
	cfg.Trading.StopLossPct = getEnvFloat("STOP_LOSS_PCT", 50.0)

	cfg.Risk.MaxPortfolioRiskPct = getEnvFloat("MAX_PORTFOLIO_RISK_PCT", 5.0)
	cfg.Risk.MaxPositionSize = getEnvInt("MAX_POSITION_SIZE", 10)
	cfg.Risk.MaxDailyLossPct = getEnvFloat("MAX_DAILY_LOSS_PCT", 2.0)
	cfg.Risk.MaxSingleTradeRiskPct = getEnvFloat("MAX_SINGLE_TRADE_RISK_PCT", 1.0)
	cfg.Risk.MinBuyingPowerReservePct = getEnvFloat("MIN_BUYING_POWER_RESERVE_PCT", 20.0)
	cfg.Risk.MaxConcentrationPct = getEnvFloat("MAX_CONCENTRATION_PCT", 25.0)

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 8080)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Notifications.TelegramToken = getEnv("TELEGRAM_TOKEN", "")
	cfg.Notifications.TelegramChatID = getEnv("TELEGRAM_CHAT_ID", "")

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultVal
}
