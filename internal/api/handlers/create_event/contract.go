package create_event

import (
	"context"

	"github.com/GritX-web/GritX/internal/service/events/models"
)

type EventsService interface {
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
