package facilities

import (
	"context"

	"github.com/GritX-web/GritX/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
