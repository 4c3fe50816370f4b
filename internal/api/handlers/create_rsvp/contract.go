package create_rsvp

import (
	"context"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/service/events/models"
)

type EventsService interface {
	CreateRSVP(ctx context.Context, eventID uuid.UUID, req *models.CreateRSVPRequest) (*models.RSVPResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
