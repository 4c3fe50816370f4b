package get_user_bookings

import (
	"context"

	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest, identity authz.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
