package domain

import "strings"

// SubscriptionTier is a provider's billing plan. The tier only influences
// the platform's revenue-share rate; it is assigned by the billing workflow
// and never changes as a side effect of rentals or bookings.
type SubscriptionTier string

const (
	TierFree         SubscriptionTier = "FREE"
	TierProfessional SubscriptionTier = "PROFESSIONAL"
	TierTeams        SubscriptionTier = "TEAMS"
)

// ParseTier maps a stored tier name onto a known tier. Unknown or empty
// values fall back to FREE, the highest fee rate, so a bad record can never
// undercharge the platform.
func ParseTier(s string) SubscriptionTier {
	switch SubscriptionTier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierProfessional:
		return TierProfessional
	case TierTeams:
		return TierTeams
	default:
		return TierFree
	}
}
