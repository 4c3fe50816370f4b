package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/dberrors"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

var bookingColumns = []string{
	"id",
	"facility_id",
	"facility_name",
	"user_id",
	"user_name",
	"user_email",
	"user_phone",
	"date",
	"start_time",
	"end_time",
	"start_min",
	"end_min",
	"status",
	"total_price",
	"equipment_needed",
	"medical_concerns",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// storeErr классифицирует ошибку драйвера: недоступность хранилища
// отделяется от остальных ошибок выполнения
func storeErr(fallback error, op string, err error) error {
	if dberrors.Unavailable(err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", fallback, op, err)
}

// Create inserts a new booking. If the context carries an active transaction
// it is used. The bookings table carries an exclusion constraint over
// (facility_id, date, [start_min, end_min)) for non-cancelled rows; a
// violation comes back as ErrSlotConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"facility_id",
			"facility_name",
			"user_id",
			"user_name",
			"user_email",
			"user_phone",
			"date",
			"start_time",
			"end_time",
			"start_min",
			"end_min",
			"status",
			"total_price",
			"equipment_needed",
			"medical_concerns",
		).
		Values(
			booking.FacilityID,
			booking.FacilityName,
			booking.UserID,
			booking.UserName,
			booking.UserEmail,
			booking.UserPhone,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.StartMin,
			booking.EndMin,
			booking.Status,
			booking.TotalPrice,
			booking.EquipmentNeeded,
			booking.MedicalConcerns,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (string(pqErr.Code) == pgExclusionViolation || string(pqErr.Code) == pgUniqueViolation) {
			return nil, ErrSlotConflict
		}
		return nil, storeErr(ErrExecQuery, "Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, storeErr(ErrScanRow, "GetByID - scan booking", err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC, start_min DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(ErrExecQuery, "GetByUserID - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetForFacilityDate returns all non-cancelled bookings for a facility on a
// calendar day, ordered by start. Both the availability calculator and the
// overlap guard read through here so they always see a fresh snapshot;
// inside a transaction the rows are locked with FOR UPDATE to serialize
// concurrent guards on the same day.
func (r *Repository) GetForFacilityDate(ctx context.Context, facilityID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"facility_id": facilityID, "date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_min ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForFacilityDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(ErrExecQuery, "GetForFacilityDate - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List получает бронирования с гибкой фильтрацией для админки
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")

	if filter.FacilityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility_id": *filter.FacilityID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr(ErrExecQuery, "UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.FacilityID,
		&booking.FacilityName,
		&booking.UserID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.UserPhone,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.StartMin,
		&booking.EndMin,
		&booking.Status,
		&booking.TotalPrice,
		&booking.EquipmentNeeded,
		&booking.MedicalConcerns,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(ErrScanRow, "scanBookings - rows error", err)
	}

	return bookings, nil
}
