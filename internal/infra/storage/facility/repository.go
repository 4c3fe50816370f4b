package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/dberrors"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/psqlbuilder"
)

var facilityColumns = []string{
	"id",
	"slug",
	"name",
	"description",
	"image_url",
	"capacity",
	"hourly_rate",
	"features",
	"created_at",
}

// Repository репозиторий справочника площадок (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
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

// List возвращает все площадки в порядке их идентификаторов
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(ErrScanRow, "List - rows error", err)
	}

	return facilities, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает площадку по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Facility, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns...).
		From("facilities").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, storeErr(ErrScanRow, op+" - scan facility", err)
	}

	return facility, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var facility domain.Facility
	var createdAt sql.NullTime

	err := row.Scan(
		&facility.ID,
		&facility.Slug,
		&facility.Name,
		&facility.Description,
		&facility.ImageURL,
		&facility.Capacity,
		&facility.HourlyRate,
		pq.Array(&facility.Features),
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	facility.CreatedAt = createdAt.Time

	return &facility, nil
}
