package domain

import "time"

type LedgerEntryType string

const (
	LedgerEntryTypeRentalPayout  LedgerEntryType = "RENTAL_PAYOUT"
	LedgerEntryTypeBookingPayout LedgerEntryType = "BOOKING_PAYOUT"
	LedgerEntryTypeAdjustment    LedgerEntryType = "ADJUSTMENT"
)

// LedgerEntry records a provider payout: the gross amount collected, the
// platform fee withheld per the provider's tier, and the net remitted.
type LedgerEntry struct {
	ID            int32           `json:"id"`
	ProviderID    int32           `json:"provider_id"`
	Type          LedgerEntryType `json:"type"`
	ReservationID *int32          `json:"reservation_id,omitempty"`
	BookingID     *int32          `json:"booking_id,omitempty"`
	GrossAmount   float64         `json:"gross_amount"`
	PlatformFee   float64         `json:"platform_fee"`
	NetAmount     float64         `json:"net_amount"`
	Description   string          `json:"description"`
	CreatedOn     time.Time       `json:"created_on"`
}

// LedgerSummary aggregates a provider's payout position.
type LedgerSummary struct {
	ProviderID       int32   `json:"provider_id"`
	TotalGross       float64 `json:"total_gross"`
	TotalPlatformFee float64 `json:"total_platform_fee"`
	TotalNet         float64 `json:"total_net"`
	EntryCount       int32   `json:"entry_count"`
}
