package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/domain"
	bookingRepo "github.com/GritX-web/GritX/internal/infra/storage/booking"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	policy      AccessPolicy
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	policy AccessPolicy,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		policy:      policy,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, identity authz.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, identity.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
			s.logger.Error("GetByID: storage unavailable for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != identity.UserID && !s.policy.IsAdmin(identity) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", identity.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest, identity authz.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID != identity.UserID && !s.policy.IsAdmin(identity) {
		s.logger.Warn("GetUserBookings: access denied for user=%s to bookings of user=%s", identity.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
			s.logger.Error("GetUserBookings: storage unavailable for user=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает бронирования с гибкой фильтрацией
// Доступно только администраторам, проверка выполняется в middleware
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, facility=%v, status=%v", req.FacilityID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
			s.logger.Error("List: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит заявку из pending в confirmed или cancelled.
// После записи статус перечитывается из хранилища; расхождение означает,
// что параллельное обновление перегнало наше, и об этом нужно сообщить.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s -> status=%s", id, status)

	newStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", status)
		return nil, ErrInvalidStatus
	}

	if newStatus == domain.StatusPending {
		s.logger.Warn("UpdateStatus: cannot move booking id=%s back to pending", id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if booking.IsDecided() {
			s.logger.Warn("UpdateStatus: booking id=%s already %s", id, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			return fmt.Errorf("%w: UpdateStatus - update error: %v", ErrInternal, err)
		}

		// Контрольное чтение
		updated, err = s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			return fmt.Errorf("%w: UpdateStatus - verification read error: %v", ErrInternal, err)
		}

		if updated.Status != newStatus {
			s.logger.Error("UpdateStatus: verification failed for booking id=%s, want=%s, got=%s",
				id, newStatus, updated.Status)
			return ErrVerificationFailed
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}
