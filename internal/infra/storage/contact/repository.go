package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/pkg/dbmetrics"
	"github.com/GritX-web/GritX/pkg/psqlbuilder"
)

var contactColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"message",
	"created_at",
}

// Repository репозиторий обращений через контактную форму
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория обращений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое обращение
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "email", "phone", "message").
		Values(msg.Name, msg.Email, msg.Phone, msg.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// List возвращает обращения в порядке убывания времени создания
func (r *Repository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contactColumns...).
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var msg domain.ContactMessage
		var createdAt sql.NullTime

		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}
