package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusRejected  ReservationStatus = "REJECTED"
	ReservationStatusOverdue   ReservationStatus = "OVERDUE"
)

// Blocks reports whether a reservation in this status occupies its date
// range for availability purposes. Completed, cancelled and rejected
// reservations never block; overdue ones are handled by the return flow,
// not the calendar.
func (s ReservationStatus) Blocks() bool {
	return s == ReservationStatusPending || s == ReservationStatusActive
}

// Reservation is a multi-day equipment rental. Dates are yyyy-mm-dd calendar
// dates, both ends inclusive: the renter holds the item on the start and the
// end day.
//
// The quote fields are a snapshot taken when the request was created. Later
// rate changes on the equipment never reprice an existing reservation.
type Reservation struct {
	ID              int32             `json:"id"`
	EquipmentID     int32             `json:"equipment_id"`
	ProviderID      int32             `json:"provider_id"`
	RenterID        int32             `json:"renter_id"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	DailyRate       float64           `json:"daily_rate"`
	TotalDays       int32             `json:"total_days"`
	Subtotal        float64           `json:"subtotal"`
	PlatformFee     float64           `json:"platform_fee"`
	DepositAmount   float64           `json:"deposit_amount"`
	TotalDue        float64           `json:"total_due"`
	Status          ReservationStatus `json:"status"`
	PickupNote      string            `json:"pickup_note"`
	RejectionReason string            `json:"rejection_reason"`
	CreatedOn       time.Time         `json:"created_on"`
	UpdatedOn       time.Time         `json:"updated_on"`
}
