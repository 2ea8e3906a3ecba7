package domain

import "time"

// DayHours is the operating window for a single weekday. Open and Close are
// "HH:MM" 24-hour strings and are ignored when Closed is true.
type DayHours struct {
	Open   string `json:"open,omitempty" yaml:"open,omitempty"`
	Close  string `json:"close,omitempty" yaml:"close,omitempty"`
	Closed bool   `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// WeekSchedule maps lowercase weekday names ("monday"…"sunday") to hours.
// Days missing from the map are treated as closed.
type WeekSchedule map[string]DayHours

// ForDate returns the hours for the weekday of the given date.
func (ws WeekSchedule) ForDate(date time.Time) DayHours {
	day, ok := ws[weekdayKey(date.Weekday())]
	if !ok {
		return DayHours{Closed: true}
	}
	return day
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// Provider is a CPS technician organization offering equipment rentals and
// bookable appointment services.
type Provider struct {
	ID          int32            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Metro       string           `json:"metro"`
	PhoneNumber string           `json:"phone_number"`
	Email       string           `json:"email"`
	Tier        SubscriptionTier `json:"tier"`
	Hours       WeekSchedule     `json:"hours"`
	CreatedOn   time.Time        `json:"created_on"`
	UpdatedOn   time.Time        `json:"updated_on"`
}
