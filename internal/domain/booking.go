package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/pkg/timeparse"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states
func (s BookingStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a facility reservation in the system
type Booking struct {
	ID         uuid.UUID
	FacilityID int64

	// Requester identity as supplied by the auth provider
	UserID    string
	UserName  string
	UserEmail *string
	UserPhone *string

	// Facility-local calendar day, no timezone conversion
	Date time.Time

	// StartTime is stored as submitted; EndTime is always a resolved "HH:MM"
	// clock label, never a duration label. StartMin/EndMin carry the resolved
	// [start, end) window and back the storage-level exclusion constraint.
	StartTime string
	EndTime   string
	StartMin  int
	EndMin    int

	Status BookingStatus

	// Denormalized for history and the admin console
	FacilityName string
	TotalPrice   float64

	EquipmentNeeded *string
	MedicalConcerns *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the booking's resolved [start, end) window. All overlap
// decisions go through timeparse.Window.Overlaps.
func (b *Booking) Window() timeparse.Window {
	return timeparse.Window{StartMin: b.StartMin, EndMin: b.EndMin}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsDecided returns true once an administrator has confirmed or cancelled the
// booking; decided bookings do not return to pending.
func (b *Booking) IsDecided() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований в админке
type BookingsFilter struct {
	FacilityID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *BookingStatus
}
