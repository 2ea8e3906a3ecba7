package pricing

import (
	"time"

	"seatsafe-backend/internal/domain"
)

// QuoteEngine produces rental quotes from a daily rate and a requested date
// range. It is pure: the same inputs always yield the same quote, so callers
// may recompute on every date-picker change without caching.
type QuoteEngine struct {
	fees *FeeCalculator
}

func NewQuoteEngine(fees *FeeCalculator) *QuoteEngine {
	return &QuoteEngine{fees: fees}
}

// Quote prices a rental over [start, end]. Day counting is inclusive of both
// ends: the renter physically holds the item on the start day and the end
// day, so Jan 1 to Jan 3 bills 3 days.
//
// Returns nil when the input is insufficient (a zero date, or start >= end).
// Callers must treat nil as "don't show a total yet", not as an error.
func (e *QuoteEngine) Quote(dailyRate float64, start, end time.Time, deposit float64, tier domain.SubscriptionTier) *domain.RentalQuote {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return nil
	}
	if dailyRate < 0 {
		return nil
	}
	if deposit < 0 {
		deposit = 0
	}

	days := wholeDaysBetween(start, end) + 1

	subtotal := round2(dailyRate * float64(days))
	fee := e.fees.PlatformFee(subtotal, tier)

	return &domain.RentalQuote{
		DailyRate:     dailyRate,
		TotalDays:     int32(days),
		Subtotal:      subtotal,
		PlatformFee:   fee,
		DepositAmount: deposit,
		// The fee is carved out of the provider's subtotal, never charged
		// on top to the renter.
		TotalDue: round2(subtotal + deposit),
	}
}

// wholeDaysBetween counts calendar days from start to end, ignoring any time
// component. Comparing via time.Date sidesteps DST-length days.
func wholeDaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}
