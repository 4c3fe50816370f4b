package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/domain"
)

// RecentBooking краткая сводка по бронированию для панели
type RecentBooking struct {
	ID           uuid.UUID `json:"id"`
	FacilityName string    `json:"facilityName"`
	UserName     string    `json:"userName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TrendPoint количество созданных бронирований за один день
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardResponse сводка для админской панели
type DashboardResponse struct {
	ConfirmedBookings int64            `json:"confirmedBookings"`
	PendingBookings   int64            `json:"pendingBookings"`
	TotalRevenue      float64          `json:"totalRevenue"`
	RecentBookings    []*RecentBooking `json:"recentBookings"`
	WeeklyTrend       []*TrendPoint    `json:"weeklyTrend"`
}

// FromDomainRecent конвертирует domain модель в сводку
func FromDomainRecent(booking *domain.Booking) *RecentBooking {
	return &RecentBooking{
		ID:           booking.ID,
		FacilityName: booking.FacilityName,
		UserName:     booking.UserName,
		Date:         booking.Date.Format(domain.DateFormat),
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		Status:       string(booking.Status),
		TotalPrice:   booking.TotalPrice,
		CreatedAt:    booking.CreatedAt,
	}
}
