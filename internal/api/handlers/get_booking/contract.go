package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, id uuid.UUID, identity authz.Identity) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
