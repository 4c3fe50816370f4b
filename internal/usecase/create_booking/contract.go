package create_booking

import (
	"context"
	"time"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/internal/integrations/authprovider"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForFacilityDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Booking, error)
}

// FacilityProvider интерфейс справочника площадок
type FacilityProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// AuthProviderClient интерфейс клиента провайдера аутентификации
type AuthProviderClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID string) (*authprovider.UserProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
