package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seatsafe-backend/internal/domain"
)

// SlotResolver computes open appointment start times for a service on a
// given day. StepMinutes is the candidate granularity (30 or 60 in
// practice) and comes from configuration, not a constant.
type SlotResolver struct {
	StepMinutes int
}

func NewSlotResolver(stepMinutes int) *SlotResolver {
	if stepMinutes <= 0 {
		stepMinutes = 30
	}
	return &SlotResolver{StepMinutes: stepMinutes}
}

// AvailableSlots generates candidate start times from open up to
// close−duration and drops any candidate whose [start, start+duration)
// window overlaps an existing non-cancelled booking's window. Slots come
// back in ascending order. A closed day yields an empty slice.
//
// Dates in the past are NOT filtered here; hiding stale days is the
// caller's concern.
func (r *SlotResolver) AvailableSlots(hours domain.WeekSchedule, durationMinutes int, date time.Time, bookings []domain.Booking) []domain.TimeSlot {
	day := hours.ForDate(date)
	if day.Closed || durationMinutes <= 0 {
		return []domain.TimeSlot{}
	}

	open, err := ParseClock(day.Open)
	if err != nil {
		return []domain.TimeSlot{}
	}
	closeAt, err := ParseClock(day.Close)
	if err != nil || closeAt <= open {
		return []domain.TimeSlot{}
	}

	type window struct{ start, end int }
	var taken []window
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		s, err := ParseClock(b.StartTime)
		if err != nil {
			// A malformed record should not wipe out the whole day.
			continue
		}
		taken = append(taken, window{start: s, end: s + int(b.DurationMinutes)})
	}

	slots := []domain.TimeSlot{}
	for start := open; start+durationMinutes <= closeAt; start += r.StepMinutes {
		end := start + durationMinutes
		free := true
		for _, w := range taken {
			if start < w.end && w.start < end {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, domain.TimeSlot{
				Start: formatClock(start),
				End:   formatClock(end),
			})
		}
	}
	return slots
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
