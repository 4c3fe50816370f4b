package list_rsvps

import (
	"context"

	"github.com/GritX-web/GritX/internal/service/events/models"
)

type EventsService interface {
	ListRSVPs(ctx context.Context) (*models.RSVPListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
