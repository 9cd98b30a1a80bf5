package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/internal/bot"
	"github.com/alphaoptions/zerodte-bot/internal/broker"
	"github.com/alphaoptions/zerodte-bot/internal/config"
	"github.com/alphaoptions/zerodte-bot/internal/logger"
	"github.com/alphaoptions/zerodte-bot/internal/monitoring"
	"github.com/alphaoptions/zerodte-bot/internal/notifications"
	"github.com/alphaoptions/zerodte-bot/internal/risk"
)

func main() {
	var (
		underlying = flag.String("underlying", "", "Underlying symbol - overrides config")
		envFile    = flag.String("env", ".env", "Environment file path (default: .env)")
	)
	flag.Parse()

	// Load environment variables from .env file
	if err := loadEnvFile(*envFile); err != nil {
		log.Printf("Warning: Could not load .env file (%v), checking environment variables...", err)
	}

	fmt.Println("🚀 0DTE Bot Starting...")

	cfg := config.Load()
	if *underlying != "" {
		cfg.Trading.Underlying = *underlying
		fmt.Printf("🔧 Underlying overridden to: %s\n", cfg.Trading.Underlying)
	}

	sessionLog, err := logger.NewLogger(cfg.Trading.Underlying)
	if err != nil {
		log.Fatalf("Failed to create session logger: %v", err)
	}
	defer sessionLog.Close()

	limits := risk.Limits{
		MaxPortfolioRiskPct:      cfg.Risk.MaxPortfolioRiskPct,
		MaxPositionSize:          cfg.Risk.MaxPositionSize,
		MaxDailyLossPct:          cfg.Risk.MaxDailyLossPct,
		MaxSingleTradeRiskPct:    cfg.Risk.MaxSingleTradeRiskPct,
		MinBuyingPowerReservePct: cfg.Risk.MinBuyingPowerReservePct,
		MaxConcentrationPct:      cfg.Risk.MaxConcentrationPct,
	}

	// Account value is refreshed from the broker snapshot every cycle.
	riskMgr := risk.NewManager(decimal.Zero, limits)
	sizer := risk.NewPositionSizer(decimal.Zero, cfg.Trading.RiskPerTradePct, cfg.Risk.MaxPositionSize)

	var notifier notifications.Notifier = notifications.NopNotifier{}
	if cfg.Notifications.TelegramToken != "" {
		notifier = notifications.NewTelegramNotifier(cfg.Notifications.TelegramToken, cfg.Notifications.TelegramChatID)
	}

	health := monitoring.NewHealthChecker()
	startMonitoringServers(cfg, health)

	strategies := bot.BuildStrategies(cfg)
	if len(strategies) == 0 {
		log.Fatal("No valid strategies configured")
	}

	brokerCfg := &broker.Config{
		APIKey:    cfg.Broker.APIKey,
		APISecret: cfg.Broker.APISecret,
		BaseURL:   cfg.Broker.BaseURL,
	}
	alpaca := broker.NewAlpacaBroker(brokerCfg)

	tradingBot := bot.New(cfg, alpaca, strategies, riskMgr, sizer, sessionLog, notifier, health)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := tradingBot.Start(ctx); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n🛑 Shutdown signal received...")

	tradingBot.Stop()
	fmt.Println("✅ Bot stopped successfully")
}

// loadEnvFile loads environment variables from a file
func loadEnvFile(envFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		return godotenv.Load(envFile)
	}
	return fmt.Errorf("env file %s not found", envFile)
}

// startMonitoringServers exposes Prometheus metrics and the health
// endpoint on their configured ports.
func startMonitoringServers(cfg *config.Config, health *monitoring.HealthChecker) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", monitoring.NewMetricsHandler())
		addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/health", health)
		addr := fmt.Sprintf(":%d", cfg.Monitoring.HealthPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Health server stopped: %v", err)
		}
	}()
}
