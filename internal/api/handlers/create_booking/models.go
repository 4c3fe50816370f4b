package create_booking

import (
	"time"

	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/domain"
	createBooking "github.com/GritX-web/GritX/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID      int64   `json:"facilityId"`
	UserName        string  `json:"userName"`
	Date            string  `json:"date"`      // "2026-03-14"
	StartTime       string  `json:"startTime"` // любой поддерживаемый формат времени
	EndTime         string  `json:"endTime"`   // время или длительность ("1.5h")
	EquipmentNeeded *string `json:"equipmentNeeded,omitempty"`
	MedicalConcerns *string `json:"medicalConcerns,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string  `json:"id"`
	FacilityID   int64   `json:"facilityId"`
	FacilityName string  `json:"facilityName"`
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`

	EquipmentNeeded *string `json:"equipmentNeeded,omitempty"`
	MedicalConcerns *string `json:"medicalConcerns,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Контакты берутся из личности запрашивающего; времена передаются как есть,
// их разбирает use case.
func (r *CreateBookingRequest) ToUseCaseRequest(identity authz.Identity) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		FacilityID:      r.FacilityID,
		UserID:          identity.UserID,
		UserName:        r.UserName,
		Date:            date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		EquipmentNeeded: r.EquipmentNeeded,
		MedicalConcerns: r.MedicalConcerns,
	}

	if identity.Email != "" {
		req.UserEmail = &identity.Email
	}
	if identity.Phone != "" {
		req.UserPhone = &identity.Phone
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		FacilityID:      resp.FacilityID,
		FacilityName:    resp.FacilityName,
		UserID:          resp.UserID,
		UserName:        resp.UserName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		EquipmentNeeded: resp.EquipmentNeeded,
		MedicalConcerns: resp.MedicalConcerns,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
