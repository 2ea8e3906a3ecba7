package schedule

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

func reservation(id, equipmentID int32, start, end string, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{
		ID:          id,
		EquipmentID: equipmentID,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
	}
}

func TestIsAvailable(t *testing.T) {
	t.Run("No reservations", func(t *testing.T) {
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), nil, 0)
		assert.True(t, ok)
	})

	t.Run("Overlapping active reservation blocks", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-08", "2024-01-12", domain.ReservationStatusActive),
		}
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.False(t, ok)
	})

	t.Run("Pending reservation blocks", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-08", "2024-01-12", domain.ReservationStatusPending),
		}
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.False(t, ok)
	})

	t.Run("Cancelled, rejected and completed do not block", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-08", "2024-01-12", domain.ReservationStatusCancelled),
			reservation(8, 1, "2024-01-08", "2024-01-12", domain.ReservationStatusRejected),
			reservation(9, 1, "2024-01-08", "2024-01-12", domain.ReservationStatusCompleted),
		}
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.True(t, ok)
	})

	t.Run("Back-to-back boundaries conflict", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-10", "2024-01-15", domain.ReservationStatusActive),
		}
		// Requested range ends exactly on the existing start day: the
		// handoff day is shared, so this is a conflict.
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.False(t, ok)

		// Starting the day after the existing rental ends is fine.
		ok = IsAvailable(1, date("2024-01-16"), date("2024-01-20"), existing, 0)
		assert.True(t, ok)
	})

	t.Run("Other equipment does not block", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 2, "2024-01-05", "2024-01-10", domain.ReservationStatusActive),
		}
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.True(t, ok)
	})

	t.Run("Self-exclusion allows editing own dates", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-05", "2024-01-10", domain.ReservationStatusPending),
		}
		// Without exclusion the renter's own reservation reads as a conflict.
		assert.False(t, IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0))
		// Excluding it lets an unchanged or shifted edit go through.
		assert.True(t, IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 7))
		assert.True(t, IsAvailable(1, date("2024-01-06"), date("2024-01-11"), existing, 7))
	})

	t.Run("Exclusion does not hide other renters", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-05", "2024-01-10", domain.ReservationStatusPending),
			reservation(8, 1, "2024-01-12", "2024-01-14", domain.ReservationStatusActive),
		}
		assert.False(t, IsAvailable(1, date("2024-01-09"), date("2024-01-13"), existing, 7))
	})

	t.Run("Malformed dates are skipped", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "not-a-date", "2024-01-12", domain.ReservationStatusActive),
			reservation(8, 1, "2024-01-08", "", domain.ReservationStatusActive),
		}
		ok := IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0)
		assert.True(t, ok)
	})

	t.Run("Contained and containing ranges conflict", func(t *testing.T) {
		existing := []domain.Reservation{
			reservation(7, 1, "2024-01-06", "2024-01-08", domain.ReservationStatusActive),
		}
		assert.False(t, IsAvailable(1, date("2024-01-05"), date("2024-01-10"), existing, 0))
		assert.False(t, IsAvailable(1, date("2024-01-07"), date("2024-01-07"), existing, 0))
	})
}
