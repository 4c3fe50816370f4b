package get_event

import (
	"context"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/service/events/models"
)

type EventsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
