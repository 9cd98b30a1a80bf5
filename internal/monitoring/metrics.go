package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Strategy metrics
	signalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zerodte_bot_signals_total",
			Help: "Total number of trade signals generated",
		},
		[]string{"strategy"},
	)

	signalConfidence = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zerodte_bot_signal_confidence",
			Help: "Confidence of the last signal per strategy",
		},
		[]string{"strategy"},
	)

	// Order metrics
	ordersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zerodte_bot_orders_submitted_total",
			Help: "Total number of orders submitted to the broker",
		},
		[]string{"underlying", "side"},
	)

	// Risk metrics
	riskRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zerodte_bot_risk_rejections_total",
			Help: "Total number of trades rejected by the risk manager",
		},
		[]string{"underlying"},
	)

	portfolioRiskPct = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "zerodte_bot_portfolio_risk_pct",
			Help: "Portfolio risk as percent of account value",
		},
	)

	dailyPnL = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "zerodte_bot_daily_pnl",
			Help: "Accumulated daily P&L in dollars",
		},
	)

	// Market data metrics
	underlyingPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zerodte_bot_underlying_price",
			Help: "Current price of the underlying",
		},
		[]string{"symbol"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zerodte_bot_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(signalsTotal)
	prometheus.MustRegister(signalConfidence)
	prometheus.MustRegister(ordersSubmitted)
	prometheus.MustRegister(riskRejections)
	prometheus.MustRegister(portfolioRiskPct)
	prometheus.MustRegister(dailyPnL)
	prometheus.MustRegister(underlyingPrice)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordSignal records a generated signal and its confidence
func RecordSignal(strategy string, confidence float64) {
	signalsTotal.WithLabelValues(strategy).Inc()
	signalConfidence.WithLabelValues(strategy).Set(confidence)
}

// RecordOrderSubmitted records a submitted order
func RecordOrderSubmitted(underlying, side string) {
	ordersSubmitted.WithLabelValues(underlying, side).Inc()
}

// RecordRiskRejection records a trade rejected by the risk manager
func RecordRiskRejection(underlying string) {
	riskRejections.WithLabelValues(underlying).Inc()
}

// UpdateRiskGauges updates the portfolio risk and daily P&L gauges
func UpdateRiskGauges(riskPct, pnl float64) {
	portfolioRiskPct.Set(riskPct)
	dailyPnL.Set(pnl)
}

// UpdateUnderlyingPrice updates the underlying price gauge
func UpdateUnderlyingPrice(symbol string, price float64) {
	underlyingPrice.WithLabelValues(symbol).Set(price)
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
