package contacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/GritX-web/GritX/internal/domain"
)

// Service сервис обращений через контактную форму
type Service struct {
	repo   ContactRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(repo ContactRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create сохраняет новое обращение
func (s *Service) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	s.logger.Info("Create: contact message from %q", msg.Email)

	if err := validate(msg); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created contact message id=%s", created.ID)
	return created, nil
}

// List возвращает все обращения (доступно только администраторам)
func (s *Service) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return messages, nil
}

func validate(msg *domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(msg.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	if len(msg.Message) > domain.MaxContactMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxContactMessageLength)
	}

	return nil
}
