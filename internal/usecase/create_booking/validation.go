package create_booking

import (
	"fmt"
	"strings"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/timeparse"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EquipmentNeeded != nil && len(*req.EquipmentNeeded) > domain.MaxNotesLength {
		return fmt.Errorf("%w: equipmentNeeded exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.MedicalConcerns != nil && len(*req.MedicalConcerns) > domain.MaxNotesLength {
		return fmt.Errorf("%w: medicalConcerns exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// findConflict looks for an existing booking whose window overlaps the
// requested one. Touching windows (end == start) do not conflict. Returns the
// first conflicting booking or nil.
func findConflict(window timeparse.Window, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		if window.Overlaps(booking.Window()) {
			return booking
		}
	}

	return nil
}
