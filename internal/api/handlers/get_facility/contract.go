package get_facility

import (
	"context"

	"github.com/GritX-web/GritX/internal/domain"
)

type FacilitiesService interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
