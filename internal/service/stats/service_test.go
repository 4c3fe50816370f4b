package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/domain"
)

type fakeRepo struct {
	confirmed int64
	pending   int64
	revenue   float64
	recent    []*domain.Booking
	daily     map[string]int64
}

func (f *fakeRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	if status == domain.StatusConfirmed {
		return f.confirmed, nil
	}
	return f.pending, nil
}

func (f *fakeRepo) ConfirmedRevenue(_ context.Context) (float64, error) {
	return f.revenue, nil
}

func (f *fakeRepo) RecentBookings(_ context.Context, limit uint64) ([]*domain.Booking, error) {
	if uint64(len(f.recent)) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeRepo) DailyCounts(_ context.Context, _ time.Time) (map[string]int64, error) {
	return f.daily, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDashboard_FillsMissingTrendDays(t *testing.T) {
	repo := &fakeRepo{
		confirmed: 4,
		pending:   2,
		revenue:   830,
		daily: map[string]int64{
			"2026-03-12": 3,
			"2026-03-14": 1,
		},
	}

	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2026, time.March, 14, 18, 30, 0, 0, time.UTC)}

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.ConfirmedBookings)
	assert.Equal(t, int64(2), resp.PendingBookings)
	assert.Equal(t, 830.0, resp.TotalRevenue)

	require.Len(t, resp.WeeklyTrend, 7)
	assert.Equal(t, "2026-03-08", resp.WeeklyTrend[0].Date)
	assert.Equal(t, "2026-03-14", resp.WeeklyTrend[6].Date)

	byDate := make(map[string]int64)
	for _, point := range resp.WeeklyTrend {
		byDate[point.Date] = point.Count
	}
	assert.Equal(t, int64(3), byDate["2026-03-12"])
	assert.Equal(t, int64(1), byDate["2026-03-14"])
	assert.Equal(t, int64(0), byDate["2026-03-13"])
}

func TestDashboard_RecentBookings(t *testing.T) {
	recent := make([]*domain.Booking, 0, 6)
	for i := 0; i < 6; i++ {
		recent = append(recent, &domain.Booking{
			ID:           uuid.New(),
			FacilityName: "SpinLab Studio",
			UserName:     "User",
			Date:         time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			Status:       domain.StatusPending,
		})
	}

	svc := NewService(&fakeRepo{recent: recent, daily: map[string]int64{}}, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)}

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.RecentBookings, 5)
}
