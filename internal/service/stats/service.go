package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/internal/service/stats/models"
)

const (
	recentBookingsLimit = 5
	trendDays           = 7
)

// Service сервис статистики для админской панели
type Service struct {
	repo         StatsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(repo StatsRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Dashboard собирает сводку: счетчики по статусам, выручку, последние
// заявки и тренд за неделю. Дни без заявок присутствуют в тренде с нулем.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: building admin summary")

	confirmed, err := s.repo.CountByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("Dashboard: failed to count confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count confirmed: %v", ErrInternal, err)
	}

	pending, err := s.repo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("Dashboard: failed to count pending bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count pending: %v", ErrInternal, err)
	}

	revenue, err := s.repo.ConfirmedRevenue(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to sum revenue: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - sum revenue: %v", ErrInternal, err)
	}

	recent, err := s.repo.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		s.logger.Error("Dashboard: failed to fetch recent bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - recent bookings: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	since := startOfDay(now).AddDate(0, 0, -(trendDays - 1))

	counts, err := s.repo.DailyCounts(ctx, since)
	if err != nil {
		s.logger.Error("Dashboard: failed to fetch daily counts: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - daily counts: %v", ErrInternal, err)
	}

	trend := make([]*models.TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := since.AddDate(0, 0, i).Format(domain.DateFormat)
		trend = append(trend, &models.TrendPoint{Date: day, Count: counts[day]})
	}

	recentModels := make([]*models.RecentBooking, 0, len(recent))
	for _, booking := range recent {
		recentModels = append(recentModels, models.FromDomainRecent(booking))
	}

	return &models.DashboardResponse{
		ConfirmedBookings: confirmed,
		PendingBookings:   pending,
		TotalRevenue:      revenue,
		RecentBookings:    recentModels,
		WeeklyTrend:       trend,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
