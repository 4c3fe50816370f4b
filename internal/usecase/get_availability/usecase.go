package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/GritX-web/GritX/internal/domain"
	bookingStorage "github.com/GritX-web/GritX/internal/infra/storage/booking"
	facilityStorage "github.com/GritX-web/GritX/internal/infra/storage/facility"
	"github.com/GritX-web/GritX/pkg/timeparse"
)

// UseCase use case для получения доступных слотов площадки
type UseCase struct {
	bookingRepo BookingRepository
	facilities  FacilityProvider
	grid        GridConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilities FacilityProvider,
	grid GridConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		facilities:  facilities,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Расчет всегда идет по свежему снимку бронирований, результат не кешируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%d, date=%s, duration=%q",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.facilities.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityStorage.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		if errors.Is(err, facilityStorage.ErrStoreUnavailable) {
			uc.logger.Error("GetAvailability: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetForFacilityDate(ctx, req.FacilityID, req.Date)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrStoreUnavailable) {
			uc.logger.Error("GetAvailability: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку слотов
	slots := buildSlots(uc.grid, bookings)

	// 5. Опциональное уточнение по желаемой длительности: слот остается
	// доступным, только если за ним хватает свободных слотов подряд
	if req.Duration != "" {
		end, err := timeparse.ParseEnd(req.Duration)
		if err == nil && end.Kind == timeparse.KindDuration && end.Minutes > 0 {
			needed := slotsNeeded(end.Minutes, uc.grid.SlotMinutes)
			slots = refineForDuration(slots, needed)
		} else {
			uc.logger.Warn("GetAvailability: ignoring unparseable duration %q", req.Duration)
		}
	}

	return &Response{
		FacilityID:  req.FacilityID,
		Date:        req.Date,
		SlotMinutes: uc.grid.SlotMinutes,
		Slots:       slots,
	}, nil
}
