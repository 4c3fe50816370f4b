package create_contact

import (
	"context"

	"github.com/GritX-web/GritX/internal/domain"
)

type ContactsService interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
