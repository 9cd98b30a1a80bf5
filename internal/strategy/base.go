package strategy

import (
	"time"

	"github.com/alphaoptions/zerodte-bot/internal/errors"
	"github.com/alphaoptions/zerodte-bot/pkg/models"
)

// Brokerage cutoff for same-day-expiry order entry: 3:15 PM ET.
const (
	cutoffHour   = 15
	cutoffMinute = 15
)

// ErrInvalidSignal is returned by CreateOrders when a signal fails its
// structural validation. It indicates a bug in signal construction, not
// a market condition.
var ErrInvalidSignal = errors.New(errors.ErrorCategoryValidation, "strategy", "create_orders", "invalid signal")

// Base carries the configuration and helpers shared by every strategy
// variant. Variants embed it and supply their own selection logic.
type Base struct {
	maxPositionSize int
	minConfidence   float64
	respectCutoff   bool
}

// NewBase creates the shared strategy core. When respectCutoff is true,
// signal generation stops at the 15:15 order-entry cutoff.
func NewBase(maxPositionSize int, minConfidence float64, respectCutoff bool) Base {
	return Base{
		maxPositionSize: maxPositionSize,
		minConfidence:   minConfidence,
		respectCutoff:   respectCutoff,
	}
}

// IsWithinTradingHours reports whether 0DTE orders may still be entered
// at the given time. Always true when cutoff enforcement is disabled.
func (b *Base) IsWithinTradingHours(now time.Time) bool {
	if !b.respectCutoff {
		return true
	}
	if now.Hour() != cutoffHour {
		return now.Hour() < cutoffHour
	}
	return now.Minute() < cutoffMinute
}

// FilterZeroDTE retains only contracts expiring on the reference date.
func (b *Base) FilterZeroDTE(contracts []*models.OptionContract, reference time.Time) []*models.OptionContract {
	filtered := make([]*models.OptionContract, 0, len(contracts))
	for _, c := range contracts {
		if c.IsZeroDTE(reference) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// CreateOrders builds one limit order per signal leg. Quantities are
// clamped to the configured maximum position size and the limit price
// defaults to the contract's mid price.
func (b *Base) CreateOrders(signal *models.Signal) ([]*models.Order, error) {
	if !signal.Validate() {
		return nil, ErrInvalidSignal
	}

	orders := make([]*models.Order, 0, len(signal.Contracts))
	for i, contract := range signal.Contracts {
		qty := signal.Quantities[i]
		if qty > b.maxPositionSize {
			qty = b.maxPositionSize
		}
		orders = append(orders, &models.Order{
			Contract:    contract,
			Side:        signal.Sides[i],
			Quantity:    qty,
			Type:        models.OrderTypeLimit,
			LimitPrice:  contract.MidPrice(),
			TimeInForce: "day",
			CreatedAt:   signal.Timestamp,
		})
	}

	return orders, nil
}
