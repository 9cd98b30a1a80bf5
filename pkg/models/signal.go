package models

import "time"

// Signal is a strategy's proposed trade: parallel slices of contracts,
// sides and quantities describe the legs, with array position the only
// ordering between them.
type Signal struct {
	Strategy   StrategyType
	Contracts  []*OptionContract
	Sides      []OrderSide
	Quantities []int
	Confidence float64
	Reason     string
	Timestamp  time.Time
}

// Validate checks the signal's structure: at least one leg, equal-length
// parallel slices, and confidence within [0, 1].
func (s *Signal) Validate() bool {
	if len(s.Contracts) == 0 {
		return false
	}
	if len(s.Contracts) != len(s.Sides) || len(s.Sides) != len(s.Quantities) {
		return false
	}
	if s.Confidence < 0.0 || s.Confidence > 1.0 {
		return false
	}
	return true
}
