package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/domain"
	eventRepo "github.com/GritX-web/GritX/internal/infra/storage/event"
	"github.com/GritX-web/GritX/internal/service/events/models"
)

// Service сервис мероприятий и регистраций на них
type Service struct {
	repo   EventRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса мероприятий
func NewService(repo EventRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает все мероприятия в хронологическом порядке
func (s *Service) List(ctx context.Context) (*models.EventListResponse, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEventList(events), nil
}

// GetByID получает мероприятие по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.EventResponse, error) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%s not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// Create создает новое мероприятие (доступно только администраторам)
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: event title=%q, category=%s, date=%s", req.Title, req.Category, req.EventDate)

	if err := validateCreateEvent(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	eventDate, err := time.Parse(domain.DateFormat, req.EventDate)
	if err != nil {
		s.logger.Warn("Create: invalid event date %q", req.EventDate)
		return nil, fmt.Errorf("%w: eventDate must be YYYY-MM-DD", ErrInvalidInput)
	}

	event := &domain.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    req.Location,
		Category:    domain.EventCategory(req.Category),
		EventDate:   eventDate,
		EventTime:   req.EventTime,
		ImageURL:    req.ImageURL,
		Highlights:  req.Highlights,
		CreatedBy:   req.CreatedBy,
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event id=%s", created.ID)
	return models.FromDomainEvent(created), nil
}

// CreateRSVP регистрирует участие в мероприятии.
// Название мероприятия денормализуется в запись RSVP.
func (s *Service) CreateRSVP(ctx context.Context, eventID uuid.UUID, req *models.CreateRSVPRequest) (*models.RSVPResponse, error) {
	s.logger.Info("CreateRSVP: event=%s, name=%q", eventID, req.Name)

	if err := validateCreateRSVP(req); err != nil {
		s.logger.Warn("CreateRSVP: validation failed: %v", err)
		return nil, err
	}

	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("CreateRSVP: event id=%s not found", eventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("CreateRSVP: repository error for event id=%s: %v", eventID, err)
		return nil, fmt.Errorf("%w: CreateRSVP - repository error: %v", ErrInternal, err)
	}

	rsvp := &domain.EventRSVP{
		EventID:    event.ID,
		EventTitle: &event.Title,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      req.Phone,
		Message:    req.Message,
	}

	created, err := s.repo.CreateRSVP(ctx, rsvp)
	if err != nil {
		s.logger.Error("CreateRSVP: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRSVP - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRSVP: successfully created rsvp id=%s", created.ID)
	return models.FromDomainRSVP(created), nil
}

// ListRSVPs возвращает все регистрации (доступно только администраторам)
func (s *Service) ListRSVPs(ctx context.Context) (*models.RSVPListResponse, error) {
	rsvps, err := s.repo.ListRSVPs(ctx)
	if err != nil {
		s.logger.Error("ListRSVPs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRSVPs - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRSVPList(rsvps), nil
}

func validateCreateEvent(req *models.CreateEventRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EventDate) == "" {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}
	if !domain.EventCategory(req.Category).Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	return nil
}

func validateCreateRSVP(req *models.CreateRSVPRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return nil
}
