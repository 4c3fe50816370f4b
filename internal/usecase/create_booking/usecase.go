package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/GritX-web/GritX/internal/domain"
	bookingStorage "github.com/GritX-web/GritX/internal/infra/storage/booking"
	facilityStorage "github.com/GritX-web/GritX/internal/infra/storage/facility"
	authClient "github.com/GritX-web/GritX/internal/integrations/authprovider"
	"github.com/GritX-web/GritX/pkg/timeparse"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilities   FacilityProvider
	authClient   AuthProviderClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilities FacilityProvider,
	authClient AuthProviderClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilities:   facilities,
		authClient:   authClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, facility=%d, date=%s, start=%q, end=%q",
		req.UserID, req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем запрошенное окно времени.
	// Неразборчивое начало отклоняется; неразборчивый конец откатывается
	// на окно длительностью по умолчанию.
	window, err := timeparse.ResolveWindow(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: cannot resolve window start=%q end=%q: %v", req.StartTime, req.EndTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSelection, err)
	}

	// 3. Получаем площадку
	facility, err := uc.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityStorage.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		if errors.Is(err, facilityStorage.ErrStoreUnavailable) {
			uc.logger.Error("CreateBooking: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Обогащаем контакты пользователя из провайдера аутентификации.
	// При недоступности провайдера используем данные из запроса как есть.
	userEmail, userPhone := req.UserEmail, req.UserPhone
	if userEmail == nil || userPhone == nil {
		profile, err := uc.authClient.GetUserWithGracefulDegradation(ctx, req.UserID)
		switch {
		case err == nil:
			if userEmail == nil && profile.Email != "" {
				userEmail = &profile.Email
			}
			if userPhone == nil && profile.Phone != "" {
				userPhone = &profile.Phone
			}
		case errors.Is(err, authClient.ErrUserNotFound), errors.Is(err, authClient.ErrServiceDegraded):
			// Профиль недоступен, продолжаем с тем, что есть
		default:
			uc.logger.Error("CreateBooking: failed to get user profile id=%s: %v", req.UserID, err)
		}
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования на эту дату и площадку с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetForFacilityDate(txCtx, req.FacilityID, req.Date)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrStoreUnavailable) {
				uc.logger.Error("CreateBooking: storage unavailable: %v", err)
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Ищем пересечение с существующими бронированиями.
		// Повторное бронирование того же пользователя и занятый слот
		// различаются, чтобы клиент мог показать разные сообщения.
		if conflict := findConflict(window, bookings); conflict != nil {
			if conflict.UserID == req.UserID {
				uc.logger.Warn("CreateBooking: user %s already booked [%d, %d) on facility %d",
					req.UserID, conflict.StartMin, conflict.EndMin, req.FacilityID)
				return ErrDuplicateOwnBooking
			}
			uc.logger.Warn("CreateBooking: slot [%d, %d) taken on facility %d",
				conflict.StartMin, conflict.EndMin, req.FacilityID)
			return ErrSlotTaken
		}

		// 5.3. Создаем бронирование. Статус всегда pending, цена считается
		// администратором при подтверждении.
		booking := &domain.Booking{
			FacilityID:      req.FacilityID,
			FacilityName:    facility.Name,
			UserID:          req.UserID,
			UserName:        req.UserName,
			UserEmail:       userEmail,
			UserPhone:       userPhone,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         timeparse.FormatMinutes(window.EndMin),
			StartMin:        window.StartMin,
			EndMin:          window.EndMin,
			Status:          domain.StatusPending,
			TotalPrice:      0,
			EquipmentNeeded: req.EquipmentNeeded,
			MedicalConcerns: req.MedicalConcerns,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Страховка на уровне хранилища: ограничение исключения в БД
			// ловит гонку, которую не увидел FOR UPDATE
			if errors.Is(err, bookingStorage.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected [%d, %d) on facility %d",
					window.StartMin, window.EndMin, req.FacilityID)
				return ErrSlotTaken
			}
			if errors.Is(err, bookingStorage.ErrStoreUnavailable) {
				uc.logger.Error("CreateBooking: storage unavailable: %v", err)
				return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		FacilityID:      result.FacilityID,
		FacilityName:    result.FacilityName,
		UserID:          result.UserID,
		UserName:        result.UserName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		StartMin:        result.StartMin,
		EndMin:          result.EndMin,
		Status:          string(result.Status),
		TotalPrice:      result.TotalPrice,
		EquipmentNeeded: result.EquipmentNeeded,
		MedicalConcerns: result.MedicalConcerns,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
