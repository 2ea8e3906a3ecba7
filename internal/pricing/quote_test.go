package pricing

import (
	"testing"
	"time"

	"seatsafe-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestQuoteEngine_Quote(t *testing.T) {
	engine := NewQuoteEngine(NewFeeCalculator(nil))

	t.Run("Inclusive day count", func(t *testing.T) {
		// Jan 1 to Jan 3: the renter holds the seat on all three days.
		q := engine.Quote(50, date("2024-01-01"), date("2024-01-03"), 20, domain.TierFree)
		assert.NotNil(t, q)
		assert.Equal(t, int32(3), q.TotalDays)
		assert.Equal(t, 150.00, q.Subtotal)
		assert.Equal(t, 4.50, q.PlatformFee)
		assert.Equal(t, 20.00, q.DepositAmount)
		// The platform fee is not charged on top of the renter total.
		assert.Equal(t, 170.00, q.TotalDue)
	})

	t.Run("Single night", func(t *testing.T) {
		q := engine.Quote(25, date("2024-06-10"), date("2024-06-11"), 0, domain.TierProfessional)
		assert.NotNil(t, q)
		assert.Equal(t, int32(2), q.TotalDays)
		assert.Equal(t, 50.00, q.Subtotal)
		assert.Equal(t, 1.25, q.PlatformFee)
		assert.Equal(t, 50.00, q.TotalDue)
	})

	t.Run("Cross month and year boundaries", func(t *testing.T) {
		q := engine.Quote(10, date("2023-12-30"), date("2024-01-02"), 0, domain.TierFree)
		assert.NotNil(t, q)
		assert.Equal(t, int32(4), q.TotalDays)
		assert.Equal(t, 40.00, q.Subtotal)
	})

	t.Run("Nil on inverted or equal range", func(t *testing.T) {
		assert.Nil(t, engine.Quote(50, date("2024-01-03"), date("2024-01-01"), 0, domain.TierFree))
		assert.Nil(t, engine.Quote(50, date("2024-01-01"), date("2024-01-01"), 0, domain.TierFree))
	})

	t.Run("Nil on missing dates", func(t *testing.T) {
		assert.Nil(t, engine.Quote(50, time.Time{}, date("2024-01-03"), 0, domain.TierFree))
		assert.Nil(t, engine.Quote(50, date("2024-01-01"), time.Time{}, 0, domain.TierFree))
	})

	t.Run("Nil on negative rate", func(t *testing.T) {
		assert.Nil(t, engine.Quote(-1, date("2024-01-01"), date("2024-01-03"), 0, domain.TierFree))
	})

	t.Run("Negative deposit treated as zero", func(t *testing.T) {
		q := engine.Quote(50, date("2024-01-01"), date("2024-01-03"), -5, domain.TierFree)
		assert.NotNil(t, q)
		assert.Equal(t, 0.00, q.DepositAmount)
		assert.Equal(t, 150.00, q.TotalDue)
	})

	t.Run("Idempotent for identical inputs", func(t *testing.T) {
		a := engine.Quote(37.50, date("2024-03-05"), date("2024-03-12"), 15, domain.TierTeams)
		b := engine.Quote(37.50, date("2024-03-05"), date("2024-03-12"), 15, domain.TierTeams)
		assert.Equal(t, a, b)
	})

	t.Run("Unknown tier uses free rate for the fee", func(t *testing.T) {
		q := engine.Quote(50, date("2024-01-01"), date("2024-01-03"), 0, domain.SubscriptionTier("GOLD"))
		assert.NotNil(t, q)
		assert.Equal(t, 4.50, q.PlatformFee)
	})
}
