package domain

import "time"

// Service is a bookable single-appointment offering (car seat installation,
// inspection, fitting lesson) with a fixed duration.
type Service struct {
	ID              int32     `json:"id"`
	ProviderID      int32     `json:"provider_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int32     `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Active          bool      `json:"active"`
	CreatedOn       time.Time `json:"created_on"`
}
