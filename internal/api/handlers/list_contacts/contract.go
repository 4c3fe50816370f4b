package list_contacts

import (
	"context"

	"github.com/GritX-web/GritX/internal/domain"
)

type ContactsService interface {
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
