package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a single appointment for a provider service on a specific day.
// Date is yyyy-mm-dd, StartTime is "HH:MM" local to the provider.
// DurationMinutes is snapshotted from the service at booking time.
type Booking struct {
	ID              int32         `json:"id"`
	ServiceID       int32         `json:"service_id"`
	ProviderID      int32         `json:"provider_id"`
	CustomerID      int32         `json:"customer_id"`
	ReferenceCode   string        `json:"reference_code"`
	Date            string        `json:"date"`
	StartTime       string        `json:"start_time"`
	DurationMinutes int32         `json:"duration_minutes"`
	Price           float64       `json:"price"`
	Status          BookingStatus `json:"status"`
	Note            string        `json:"note"`
	CreatedOn       time.Time     `json:"created_on"`
	UpdatedOn       time.Time     `json:"updated_on"`
}

// TimeSlot is a bookable start time produced by the slot resolver.
type TimeSlot struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // start + service duration
}
