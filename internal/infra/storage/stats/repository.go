package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/psqlbuilder"
)

// Repository репозиторий агрегатов для админской панели
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория статистики
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountByStatus возвращает количество бронирований в заданном статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ConfirmedRevenue returns the revenue over confirmed bookings. Rows with a
// zero total price are counted at the base slot rate so legacy bookings that
// predate pricing still contribute.
func (r *Repository) ConfirmedRevenue(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		fmt.Sprintf("COALESCE(SUM(CASE WHEN total_price > 0 THEN total_price ELSE %g END), 0)", domain.BaseSlotRate),
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ConfirmedRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: ConfirmedRevenue - scan revenue: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// RecentBookings возвращает последние созданные бронирования
func (r *Repository) RecentBookings(ctx context.Context, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"facility_name",
		"user_id",
		"user_name",
		"date",
		"start_time",
		"end_time",
		"status",
		"total_price",
		"created_at",
	).
		From("bookings").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RecentBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RecentBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0, limit)
	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.FacilityID,
			&booking.FacilityName,
			&booking.UserID,
			&booking.UserName,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.TotalPrice,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: RecentBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RecentBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// DailyCounts возвращает количество созданных бронирований по дням,
// начиная с указанной даты включительно
func (r *Repository) DailyCounts(ctx context.Context, since time.Time) (map[string]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("created_at::date AS day", "COUNT(*)").
		From("bookings").
		Where(squirrel.GtOrEq{"created_at": since}).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var count int64

		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("%w: DailyCounts - scan row: %v", ErrScanRow, err)
		}

		counts[day.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}
