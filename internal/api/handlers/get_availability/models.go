package get_availability

import (
	"github.com/GritX-web/GritX/internal/domain"
	getAvailability "github.com/GritX-web/GritX/internal/usecase/get_availability"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID  int64          `json:"facilityId"`
	Date        string         `json:"date"`
	SlotMinutes int            `json:"slotMinutes"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{Time: slot.Time, Available: slot.Available})
	}

	return &AvailabilityResponse{
		FacilityID:  resp.FacilityID,
		Date:        resp.Date.Format(domain.DateFormat),
		SlotMinutes: resp.SlotMinutes,
		Slots:       slots,
	}
}
