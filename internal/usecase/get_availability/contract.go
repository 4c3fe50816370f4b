package get_availability

import (
	"context"
	"time"

	"github.com/GritX-web/GritX/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetForFacilityDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Booking, error)
}

// FacilityProvider интерфейс справочника площадок
type FacilityProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
