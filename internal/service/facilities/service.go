package facilities

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/GritX-web/GritX/internal/domain"
	facilityRepo "github.com/GritX-web/GritX/internal/infra/storage/facility"
)

const (
	cacheKeyList       = "facilities:list"
	cacheKeyByIDPrefix = "facilities:id:"
	cacheKeySlugPrefix = "facilities:slug:"
)

// Service serves the facility catalog. The catalog is an immutable seed, so
// responses are cached with a TTL. Booking and availability data never goes
// through this cache.
type Service struct {
	repo   FacilityRepository
	cache  *gocache.Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(repo FacilityRepository, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger,
	}
}

// List возвращает все площадки
func (s *Service) List(ctx context.Context) ([]*domain.Facility, error) {
	if cached, ok := s.cache.Get(cacheKeyList); ok {
		return cached.([]*domain.Facility), nil
	}

	facilities, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrStoreUnavailable) {
			s.logger.Error("List: storage unavailable: %v", err)
			return nil, err
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.cache.SetDefault(cacheKeyList, facilities)
	return facilities, nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	key := cacheKeyByIDPrefix + strconv.FormatInt(id, 10)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.Facility), nil
	}

	facility, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			// Пробрасываем ошибку хранилища как есть: use case'ы сопоставляют именно её
			return nil, facilityRepo.ErrFacilityNotFound
		}
		if errors.Is(err, facilityRepo.ErrStoreUnavailable) {
			s.logger.Error("GetByID: storage unavailable for facility id=%d: %v", id, err)
			return nil, err
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.cache.SetDefault(key, facility)
	return facility, nil
}

// GetBySlug получает площадку по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Facility, error) {
	key := cacheKeySlugPrefix + slug
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.Facility), nil
	}

	facility, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetBySlug: facility slug=%s not found", slug)
			return nil, ErrFacilityNotFound
		}
		if errors.Is(err, facilityRepo.ErrStoreUnavailable) {
			s.logger.Error("GetBySlug: storage unavailable for slug=%s: %v", slug, err)
			return nil, err
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	s.cache.SetDefault(key, facility)
	return facility, nil
}
