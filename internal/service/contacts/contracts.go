package contacts

import (
	"context"

	"github.com/GritX-web/GritX/internal/domain"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
