package pricing

import (
	"math"

	"seatsafe-backend/internal/domain"
)

// RateTable maps a subscription tier to the platform's revenue-share rate.
type RateTable map[domain.SubscriptionTier]float64

// DefaultRates is the shipped rate table. Deployments may override it via
// the pricing section of the config file.
var DefaultRates = RateTable{
	domain.TierFree:         0.03,
	domain.TierProfessional: 0.025,
	domain.TierTeams:        0.0225,
}

// FeeCalculator computes the platform fee and net payout for a monetary
// amount under a provider's subscription tier. The rate table is injected at
// construction so tests and deployments can swap it without touching shared
// state.
type FeeCalculator struct {
	rates    RateTable
	fallback float64
}

// NewFeeCalculator builds a calculator from the given table. A nil table
// uses DefaultRates. The FREE rate doubles as the fallback for tiers missing
// from the table.
func NewFeeCalculator(rates RateTable) *FeeCalculator {
	if rates == nil {
		rates = DefaultRates
	}
	fallback, ok := rates[domain.TierFree]
	if !ok {
		fallback = DefaultRates[domain.TierFree]
	}
	return &FeeCalculator{rates: rates, fallback: fallback}
}

// PlatformFee returns the fee withheld from amount for the given tier,
// rounded to cents. Non-positive or NaN amounts yield 0; a negative fee is
// never produced. This function has no failure mode.
func (c *FeeCalculator) PlatformFee(amount float64, tier domain.SubscriptionTier) float64 {
	if math.IsNaN(amount) || amount <= 0 {
		return 0
	}
	rate, ok := c.rates[tier]
	if !ok {
		rate = c.fallback
	}
	return round2(amount * rate)
}

// NetPayout returns the amount remitted to the provider after the platform
// fee. PlatformFee + NetPayout reconstructs the amount to within one cent.
func (c *FeeCalculator) NetPayout(amount float64, tier domain.SubscriptionTier) float64 {
	if math.IsNaN(amount) || amount <= 0 {
		return 0
	}
	return round2(amount - c.PlatformFee(amount, tier))
}

// round2 rounds to 2 decimals. The epsilon nudges exact halves that binary
// floating point represents just under .005 (99.99*0.03 = 2.9996999...)
// onto the correct cent.
func round2(v float64) float64 {
	return math.Round((v+1e-9)*100) / 100
}
