package risk

// Limits holds the portfolio-level risk configuration. Immutable once
// built; construct with DefaultLimits and override fields before handing
// the value to a Manager.
type Limits struct {
	MaxPortfolioRiskPct      float64 // max % of portfolio at risk
	MaxPositionSize          int     // max contracts per position
	MaxDailyLossPct          float64 // max daily loss as % of portfolio
	MaxSingleTradeRiskPct    float64 // max risk per trade as % of portfolio
	MinBuyingPowerReservePct float64 // reserve buying power %, currently advisory
	MaxConcentrationPct      float64 // max % in a single underlying
}

// DefaultLimits returns the standard limit set.
func DefaultLimits() Limits {
	return Limits{
		MaxPortfolioRiskPct:      5.0,
		MaxPositionSize:          10,
		MaxDailyLossPct:          2.0,
		MaxSingleTradeRiskPct:    1.0,
		MinBuyingPowerReservePct: 20.0,
		MaxConcentrationPct:      25.0,
	}
}
