package get_admin_stats

import (
	"context"

	"github.com/GritX-web/GritX/internal/service/stats/models"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
