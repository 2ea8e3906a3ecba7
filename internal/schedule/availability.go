package schedule

import (
	"time"

	"seatsafe-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// IsAvailable reports whether the equipment is free over [start, end] given
// the reservations already held against it. Overlap is inclusive on both
// boundaries: a rental ending the day another starts is a conflict, because
// a physical handoff needs the buffer day.
//
// Only reservations whose status blocks the calendar (PENDING, ACTIVE) are
// considered. Records with malformed dates are skipped rather than failing
// the whole check: under-counting one bad row beats blocking every
// availability check on the platform.
//
// excludeReservationID removes the renter's own reservation from the
// conflict set when they are editing its dates; pass 0 when creating a new
// reservation. Every edit call site must thread the id through, or editing
// unchanged dates falsely reports a conflict.
//
// This is an advisory check for fast user feedback. The storage layer's
// exclusion constraint is the actual correctness guarantee against two
// renters racing for the same dates.
func IsAvailable(equipmentID int32, start, end time.Time, reservations []domain.Reservation, excludeReservationID int32) bool {
	for _, r := range reservations {
		if r.EquipmentID != equipmentID {
			continue
		}
		if excludeReservationID != 0 && r.ID == excludeReservationID {
			continue
		}
		if !r.Status.Blocks() {
			continue
		}
		exStart, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			continue
		}
		exEnd, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			continue
		}
		if !start.After(exEnd) && !end.Before(exStart) {
			return false
		}
	}
	return true
}
