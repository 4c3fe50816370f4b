package stats

import (
	"context"
	"time"

	"github.com/GritX-web/GritX/internal/domain"
)

// StatsRepository интерфейс репозитория агрегатов
type StatsRepository interface {
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	ConfirmedRevenue(ctx context.Context) (float64, error)
	RecentBookings(ctx context.Context, limit uint64) ([]*domain.Booking, error)
	DailyCounts(ctx context.Context, since time.Time) (map[string]int64, error)
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
