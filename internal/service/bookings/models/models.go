package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией (админка)
type ListBookingsRequest struct {
	FacilityID *int64     `json:"facilityId,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     *string    `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FacilityID: r.FacilityID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse модель бронирования для ответа
type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   int64     `json:"facilityId"`
	FacilityName string    `json:"facilityName"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    *string   `json:"userEmail,omitempty"`
	UserPhone    *string   `json:"userPhone,omitempty"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"totalPrice"`

	EquipmentNeeded *string `json:"equipmentNeeded,omitempty"`
	MedicalConcerns *string `json:"medicalConcerns,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		FacilityID:      booking.FacilityID,
		FacilityName:    booking.FacilityName,
		UserID:          booking.UserID,
		UserName:        booking.UserName,
		UserEmail:       booking.UserEmail,
		UserPhone:       booking.UserPhone,
		Date:            booking.Date.Format(domain.DateFormat),
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		Status:          string(booking.Status),
		TotalPrice:      booking.TotalPrice,
		EquipmentNeeded: booking.EquipmentNeeded,
		MedicalConcerns: booking.MedicalConcerns,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, FromDomainBooking(booking))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
