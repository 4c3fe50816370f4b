package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/domain"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	CreateRSVP(ctx context.Context, rsvp *domain.EventRSVP) (*domain.EventRSVP, error)
	ListRSVPs(ctx context.Context) ([]*domain.EventRSVP, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
