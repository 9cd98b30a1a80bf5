package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alphaoptions/zerodte-bot/internal/broker"
	"github.com/alphaoptions/zerodte-bot/internal/config"
	"github.com/alphaoptions/zerodte-bot/internal/logger"
	"github.com/alphaoptions/zerodte-bot/internal/monitoring"
	"github.com/alphaoptions/zerodte-bot/internal/notifications"
	"github.com/alphaoptions/zerodte-bot/internal/risk"
	"github.com/alphaoptions/zerodte-bot/internal/strategy"
	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// TradingBot wires strategies, the risk engine and the broker into a
// scheduled decision loop. One bot trades one underlying.
type TradingBot struct {
	config     *config.Config
	broker     broker.Broker
	strategies []strategy.Strategy
	riskMgr    *risk.Manager
	sizer      *risk.PositionSizer
	logger     *logger.Logger
	notifier   notifications.Notifier
	health     *monitoring.HealthChecker

	sessionDay time.Time
	running    bool
	stopChan   chan struct{}
}

// New creates a trading bot from its collaborators.
func New(
	cfg *config.Config,
	brk broker.Broker,
	strategies []strategy.Strategy,
	riskMgr *risk.Manager,
	sizer *risk.PositionSizer,
	log *logger.Logger,
	notifier notifications.Notifier,
	health *monitoring.HealthChecker,
) *TradingBot {
	return &TradingBot{
		config:     cfg,
		broker:     brk,
		strategies: strategies,
		riskMgr:    riskMgr,
		sizer:      sizer,
		logger:     log,
		notifier:   notifier,
		health:     health,
		stopChan:   make(chan struct{}),
	}
}

// BuildStrategies constructs the strategy set named in the configuration.
// Unknown names are skipped.
func BuildStrategies(cfg *config.Config) []strategy.Strategy {
	out := make([]strategy.Strategy, 0, len(cfg.Trading.Strategies))
	for _, name := range cfg.Trading.Strategies {
		switch models.StrategyType(name) {
		case models.StrategyLongCall:
			out = append(out, strategy.NewLongCall(strategy.LongCallConfig{
				MaxPositionSize: cfg.Risk.MaxPositionSize,
				DisableCutoff:   cfg.Trading.DisableCutoff,
			}))
		case models.StrategyLongPut:
			out = append(out, strategy.NewLongPut(strategy.LongPutConfig{
				MaxPositionSize: cfg.Risk.MaxPositionSize,
				DisableCutoff:   cfg.Trading.DisableCutoff,
			}))
		case models.StrategyStraddle:
			out = append(out, strategy.NewStraddle(strategy.StraddleConfig{
				MaxPositionSize: cfg.Risk.MaxPositionSize,
				DisableCutoff:   cfg.Trading.DisableCutoff,
			}))
		case models.StrategyStrangle:
			out = append(out, strategy.NewStrangle(strategy.StrangleConfig{
				MaxPositionSize: cfg.Risk.MaxPositionSize,
				DisableCutoff:   cfg.Trading.DisableCutoff,
			}))
		}
	}
	return out
}

// Start connects to the broker and launches the decision loop.
func (b *TradingBot) Start(ctx context.Context) error {
	b.logger.Info("Starting 0DTE bot for %s", b.config.Trading.Underlying)

	if err := b.broker.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}

	b.health.SetConnected(true)
	b.sessionDay = truncateToDay(time.Now())
	b.running = true

	if b.config.Notifications.TelegramToken != "" {
		if err := b.notifier.SendAlert("info", "0DTE bot started"); err != nil {
			b.logger.Warning("Failed to send startup notification: %v", err)
		}
	}

	b.printStartupInfo()

	go b.tradingLoop(ctx)

	b.logger.Info("0DTE bot started")
	return nil
}

// Stop halts the decision loop and disconnects from the broker.
func (b *TradingBot) Stop() {
	if !b.running {
		return
	}
	b.running = false
	close(b.stopChan)

	b.printRiskSummary()

	b.broker.Disconnect()
	b.health.SetConnected(false)
	b.logger.Info("0DTE bot stopped")
}

// tradingLoop runs one decision cycle per configured interval.
func (b *TradingBot) tradingLoop(ctx context.Context) {
	ticker := time.NewTicker(b.config.Trading.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Trading loop stopped")
			return
		case <-b.stopChan:
			b.logger.Info("Trading loop stopped")
			return
		case <-ticker.C:
			b.runCycle(time.Now())
		}
	}
}

// runCycle performs one decision cycle. Every failure mode is local:
// missing inputs skip the cycle instead of stopping the loop.
func (b *TradingBot) runCycle(now time.Time) {
	defer b.health.MarkCycle()

	b.maybeStartNewSession(now)

	account := b.broker.GetAccount()
	if account == nil {
		b.logger.Warning("No account snapshot, skipping cycle")
		monitoring.RecordError("no_account")
		return
	}
	if !account.CanTradeOptions() {
		b.logger.Warning("Account not approved for options trading, skipping cycle")
		return
	}

	b.riskMgr.SetAccountValue(account.PortfolioValue)
	b.sizer.SetAccountValue(account.PortfolioValue)

	underlying := b.config.Trading.Underlying
	price := b.broker.GetUnderlyingPrice(underlying)
	if price == nil {
		b.logger.Warning("No underlying price for %s, skipping cycle", underlying)
		monitoring.RecordError("no_price")
		return
	}
	priceF, _ := price.Float64()
	b.health.UpdatePrice(priceF)
	monitoring.UpdateUnderlyingPrice(underlying, priceF)

	chain := b.broker.GetOptionChain(underlying, &now)
	contracts := filterZeroDTE(chain, now)
	if len(contracts) == 0 {
		b.logger.Info("No 0DTE contracts for %s, skipping cycle", underlying)
		return
	}

	for _, st := range b.strategies {
		b.evaluateStrategy(st, *price, contracts, now)
	}

	summary := b.riskMgr.GetSummary()
	pnlF, _ := summary.DailyPnL.Float64()
	monitoring.UpdateRiskGauges(summary.PortfolioRiskPct, pnlF)
}

// evaluateStrategy runs one strategy over the chain snapshot and routes
// any resulting orders through sizing, the risk gate and submission.
func (b *TradingBot) evaluateStrategy(st strategy.Strategy, price decimal.Decimal, contracts []*models.OptionContract, now time.Time) {
	signal := st.GenerateSignal(price, contracts, now)
	if signal == nil {
		return
	}

	b.logger.Signal("%s: %s (confidence %.2f)", st.Name(), signal.Reason, signal.Confidence)
	monitoring.RecordSignal(st.Name(), signal.Confidence)

	orders, err := st.CreateOrders(signal)
	if err != nil {
		// Structural signal failure is a bug in the strategy, not a
		// market condition.
		b.logger.Error("%s produced an invalid signal: %v", st.Name(), err)
		monitoring.RecordError("invalid_signal")
		return
	}

	for _, order := range orders {
		b.submitOrder(order, now)
	}
}

// submitOrder sizes, gates and submits a single order leg.
func (b *TradingBot) submitOrder(order *models.Order, now time.Time) {
	size := b.sizer.CalculateSize(order.Contract, b.config.Trading.StopLossPct)
	if size <= 0 {
		b.logger.Info("Sizer returned 0 for %s, skipping order", order.Contract.Symbol)
		return
	}
	order.Quantity = size

	if !order.Validate() {
		b.logger.Warning("Order failed validation for %s, skipping", order.Contract.Symbol)
		return
	}

	approved, reason := b.riskMgr.CanTakeTrade(order)
	if !approved {
		b.logger.LogRiskRejection(order.Contract.Symbol, reason)
		monitoring.RecordRiskRejection(order.Contract.Underlying)
		return
	}

	orderID := b.broker.SubmitOrder(
		order.Contract.Symbol,
		order.Quantity,
		order.Side,
		order.Type,
		order.LimitPrice,
		order.TimeInForce,
	)
	if orderID == "" {
		b.logger.Warning("Broker rejected order for %s", order.Contract.Symbol)
		monitoring.RecordError("order_rejected")
		return
	}

	order.ID = orderID
	order.Status = "submitted"

	limitStr := ""
	if order.LimitPrice != nil {
		limitStr = order.LimitPrice.String()
	}
	b.logger.LogOrderSubmission(orderID, order.Contract.Symbol, string(order.Side), order.Quantity, limitStr)
	monitoring.RecordOrderSubmitted(order.Contract.Underlying, string(order.Side))

	if order.LimitPrice != nil {
		b.riskMgr.AddPosition(&models.Position{
			Contract:   order.Contract,
			Side:       order.Side,
			Quantity:   order.Quantity,
			EntryPrice: *order.LimitPrice,
			EntryTime:  now,
		})
	}

	if b.config.Notifications.TelegramToken != "" {
		msg := fmt.Sprintf("Order %s: %s %d x %s", orderID, order.Side, order.Quantity, order.Contract.Symbol)
		if err := b.notifier.SendAlert("success", msg); err != nil {
			b.logger.Warning("Failed to send order notification: %v", err)
		}
	}
}

// maybeStartNewSession resets the daily P&L accumulator when the
// calendar day rolls over.
func (b *TradingBot) maybeStartNewSession(now time.Time) {
	day := truncateToDay(now)
	if day.After(b.sessionDay) {
		b.logger.Info("New trading session: %s", day.Format("2006-01-02"))
		b.riskMgr.ResetDailyPnL()
		b.sessionDay = day
	}
}

func filterZeroDTE(contracts []*models.OptionContract, reference time.Time) []*models.OptionContract {
	out := make([]*models.OptionContract, 0, len(contracts))
	for _, c := range contracts {
		if c.IsZeroDTE(reference) {
			out = append(out, c)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
