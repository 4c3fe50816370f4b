package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/domain"
)

// Request модели

// CreateEventRequest запрос на создание мероприятия
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	EventDate   string   `json:"eventDate"` // YYYY-MM-DD
	EventTime   string   `json:"eventTime"` // Отображаемая строка, например "6:00 PM - 9:00 PM"
	ImageURL    string   `json:"imageUrl"`
	Highlights  []string `json:"highlights"`
	CreatedBy   *string  `json:"createdBy,omitempty"`
}

// CreateRSVPRequest запрос на регистрацию участия
type CreateRSVPRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message *string `json:"message,omitempty"`
}

// Response модели

// EventResponse модель мероприятия для ответа
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	EventDate   string    `json:"eventDate"`
	EventTime   string    `json:"eventTime"`
	ImageURL    string    `json:"imageUrl"`
	Highlights  []string  `json:"highlights"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventListResponse список мероприятий
type EventListResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int              `json:"total"`
}

// RSVPResponse модель RSVP для ответа
type RSVPResponse struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"eventId"`
	EventTitle *string   `json:"eventTitle,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RSVPListResponse список RSVP
type RSVPListResponse struct {
	RSVPs []*RSVPResponse `json:"rsvps"`
	Total int             `json:"total"`
}

// FromDomainEvent конвертирует domain модель в response
func FromDomainEvent(event *domain.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Category:    string(event.Category),
		EventDate:   event.EventDate.Format(domain.DateFormat),
		EventTime:   event.EventTime,
		ImageURL:    event.ImageURL,
		Highlights:  event.Highlights,
		CreatedAt:   event.CreatedAt,
	}
}

// FromDomainEventList конвертирует список domain моделей в response
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	responses := make([]*EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, FromDomainEvent(event))
	}
	return &EventListResponse{Events: responses, Total: len(responses)}
}

// FromDomainRSVP конвертирует domain модель в response
func FromDomainRSVP(rsvp *domain.EventRSVP) *RSVPResponse {
	return &RSVPResponse{
		ID:         rsvp.ID,
		EventID:    rsvp.EventID,
		EventTitle: rsvp.EventTitle,
		Name:       rsvp.Name,
		Email:      rsvp.Email,
		Phone:      rsvp.Phone,
		Message:    rsvp.Message,
		CreatedAt:  rsvp.CreatedAt,
	}
}

// FromDomainRSVPList конвертирует список domain моделей в response
func FromDomainRSVPList(rsvps []*domain.EventRSVP) *RSVPListResponse {
	responses := make([]*RSVPResponse, 0, len(rsvps))
	for _, rsvp := range rsvps {
		responses = append(responses, FromDomainRSVP(rsvp))
	}
	return &RSVPListResponse{RSVPs: responses, Total: len(responses)}
}
