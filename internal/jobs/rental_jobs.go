package jobs

import (
	"context"
	"time"

	"seatsafe-backend/internal/logger"
)

// MarkOverdueReservations flips ACTIVE reservations past their end date to
// OVERDUE so providers see unreturned equipment on their dashboard.
func (jr *JobRunner) MarkOverdueReservations() {
	jr.runWithRecovery("MarkOverdueReservations", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		count, err := jr.store.ReservationRepository.MarkOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to mark overdue reservations", "error", err)
			return
		}
		logger.Info("Marked reservations as overdue", "count", count, "as_of", today)
	})
}

// ExpirePendingReservations cancels rental requests that providers never
// answered within the configured TTL, releasing the held dates.
func (jr *JobRunner) ExpirePendingReservations() {
	jr.runWithRecovery("ExpirePendingReservations", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Booking.PendingReservationTTLDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-ttl)

		count, err := jr.store.ReservationRepository.ExpirePending(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire pending reservations", "error", err)
			return
		}
		logger.Info("Expired stale pending reservations", "count", count, "cutoff", cutoff.Format(time.RFC3339))
	})
}

// SendReturnReminders emails renters whose rental ends today.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		reservations, err := jr.store.ReservationRepository.ListActiveEndingOn(ctx, today)
		if err != nil {
			logger.Error("Failed to load reservations ending today", "error", err)
			return
		}

		sent := 0
		for _, rt := range reservations {
			renter, err := jr.store.UserRepository.GetByID(ctx, rt.RenterID)
			if err != nil {
				logger.Error("Failed to load renter for reminder", "reservation_id", rt.ID, "error", err)
				continue
			}
			eq, err := jr.store.EquipmentRepository.GetByID(ctx, rt.EquipmentID)
			if err != nil {
				logger.Error("Failed to load equipment for reminder", "reservation_id", rt.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, renter.Email, eq.Name, rt.EndDate); err != nil {
				logger.Error("Failed to send return reminder", "reservation_id", rt.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent return reminders", "count", sent, "end_date", today)
	})
}
