package domain

// RentalQuote is the derived price breakdown for a requested date range.
// It is recomputed on every request and never persisted as-is; a snapshot
// of its fields is copied onto the Reservation when a request is submitted.
//
// PlatformFee is the platform's cut of the subtotal, tracked for payout
// accounting. It is absorbed from the provider's subtotal, not charged on
// top to the renter, so it is deliberately not part of TotalDue.
type RentalQuote struct {
	DailyRate     float64 `json:"daily_rate"`
	TotalDays     int32   `json:"total_days"`
	Subtotal      float64 `json:"subtotal"`
	PlatformFee   float64 `json:"platform_fee"`
	DepositAmount float64 `json:"deposit_amount"`
	TotalDue      float64 `json:"total_due"`
}
