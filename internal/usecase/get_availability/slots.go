package get_availability

import (
	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/timeparse"
)

// buildSlots generates the slot grid for one day and marks each slot taken
// when any active booking overlaps it. Overlap is strict on half-open
// windows, so a booking ending exactly at a slot start leaves that slot free.
// Rows with a degenerate window (end <= start) are skipped.
func buildSlots(grid GridConfig, bookings []*domain.Booking) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0, (grid.CloseMinute-grid.OpenMinute)/grid.SlotMinutes)

	for start := grid.OpenMinute; start+grid.SlotMinutes <= grid.CloseMinute; start += grid.SlotMinutes {
		slot := timeparse.Window{StartMin: start, EndMin: start + grid.SlotMinutes}
		available := true

		for _, booking := range bookings {
			if booking.IsCancelled() {
				continue
			}
			if booking.EndMin <= booking.StartMin {
				continue
			}
			if slot.Overlaps(booking.Window()) {
				available = false
				break
			}
		}

		slots = append(slots, domain.AvailabilitySlot{
			StartMin:  start,
			Time:      timeparse.FormatMinutes(start),
			Available: available,
		})
	}

	return slots
}

// refineForDuration keeps a slot available only when enough consecutive free
// slots follow it to cover the requested duration. needed is the number of
// grid slots the duration spans, rounded up.
func refineForDuration(slots []domain.AvailabilitySlot, needed int) []domain.AvailabilitySlot {
	if needed <= 1 {
		return slots
	}

	refined := make([]domain.AvailabilitySlot, len(slots))
	copy(refined, slots)

	for i := range refined {
		if !refined[i].Available {
			continue
		}

		if i+needed > len(slots) {
			refined[i].Available = false
			continue
		}

		for j := i + 1; j < i+needed; j++ {
			if !slots[j].Available {
				refined[i].Available = false
				break
			}
		}
	}

	return refined
}

// slotsNeeded переводит длительность в число слотов сетки (с округлением вверх)
func slotsNeeded(durationMinutes, slotMinutes int) int {
	if durationMinutes <= 0 || slotMinutes <= 0 {
		return 1
	}
	return (durationMinutes + slotMinutes - 1) / slotMinutes
}
