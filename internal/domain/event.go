package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory категория мероприятия
type EventCategory string

const (
	CategoryWellness     EventCategory = "Wellness"
	CategorySocial       EventCategory = "Social"
	CategoryProfessional EventCategory = "Professional"
	CategoryCompetition  EventCategory = "Competition"
)

// Valid reports whether the category is one of the known values
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryWellness, CategorySocial, CategoryProfessional, CategoryCompetition:
		return true
	}
	return false
}

// Event represents a facility event users can RSVP to. EventTime is a raw
// display string (e.g. "10:00 AM - 7:00 PM") and is never fed into interval
// arithmetic.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	Category    EventCategory
	EventDate   time.Time
	EventTime   string
	ImageURL    string
	Highlights  []string
	CreatedBy   *string
	CreatedAt   time.Time
}

// EventRSVP represents a user's RSVP to an event
type EventRSVP struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	EventTitle *string
	Name       string
	Email      string
	Phone      *string
	Message    *string
	CreatedAt  time.Time
}
