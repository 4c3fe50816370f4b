package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"title",
	"description",
	"location",
	"category",
	"event_date",
	"event_time",
	"image_url",
	"highlights",
	"created_by",
	"created_at",
}

var rsvpColumns = []string{
	"id",
	"event_id",
	"event_title",
	"name",
	"email",
	"phone",
	"message",
	"created_at",
}

// Repository репозиторий мероприятий и RSVP
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мероприятий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEvents возвращает мероприятия в порядке возрастания даты
func (r *Repository) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		OrderBy("event_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEvents - scan row: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// GetEventByID получает мероприятие по ID
func (r *Repository) GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEventByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: GetEventByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// CreateEvent создает новое мероприятие
func (r *Repository) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"title",
			"description",
			"location",
			"category",
			"event_date",
			"event_time",
			"image_url",
			"highlights",
			"created_by",
		).
		Values(
			event.Title,
			event.Description,
			event.Location,
			event.Category,
			event.EventDate,
			event.EventTime,
			event.ImageURL,
			pq.Array(event.Highlights),
			event.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time

	return event, nil
}

// CreateRSVP сохраняет RSVP на мероприятие
func (r *Repository) CreateRSVP(ctx context.Context, rsvp *domain.EventRSVP) (*domain.EventRSVP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("event_rsvps").
		Columns(
			"event_id",
			"event_title",
			"name",
			"email",
			"phone",
			"message",
		).
		Values(
			rsvp.EventID,
			rsvp.EventTitle,
			rsvp.Name,
			rsvp.Email,
			rsvp.Phone,
			rsvp.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRSVP - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rsvp.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRSVP - execute insert: %v", ErrExecQuery, err)
	}

	rsvp.CreatedAt = createdAt.Time

	return rsvp, nil
}

// ListRSVPs возвращает RSVP в порядке убывания времени создания
func (r *Repository) ListRSVPs(ctx context.Context) ([]*domain.EventRSVP, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rsvpColumns...).
		From("event_rsvps").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRSVPs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRSVPs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rsvps := make([]*domain.EventRSVP, 0)
	for rows.Next() {
		var rsvp domain.EventRSVP
		var createdAt sql.NullTime

		err := rows.Scan(
			&rsvp.ID,
			&rsvp.EventID,
			&rsvp.EventTitle,
			&rsvp.Name,
			&rsvp.Email,
			&rsvp.Phone,
			&rsvp.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRSVPs - scan row: %v", ErrScanRow, err)
		}

		rsvp.CreatedAt = createdAt.Time
		rsvps = append(rsvps, &rsvp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRSVPs - rows error: %v", ErrScanRow, err)
	}

	return rsvps, nil
}

func scanEvent(row interface{ Scan(dest ...interface{}) error }) (*domain.Event, error) {
	var event domain.Event
	var createdAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Category,
		&event.EventDate,
		&event.EventTime,
		&event.ImageURL,
		pq.Array(&event.Highlights),
		&event.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	event.CreatedAt = createdAt.Time

	return &event, nil
}
