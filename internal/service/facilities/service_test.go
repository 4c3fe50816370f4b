package facilities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/domain"
	facilityRepo "github.com/GritX-web/GritX/internal/infra/storage/facility"
)

type countingRepo struct {
	facilities []*domain.Facility
	listCalls  int
	getCalls   int
}

func (r *countingRepo) List(_ context.Context) ([]*domain.Facility, error) {
	r.listCalls++
	return r.facilities, nil
}

func (r *countingRepo) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	r.getCalls++
	for _, f := range r.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, facilityRepo.ErrFacilityNotFound
}

func (r *countingRepo) GetBySlug(_ context.Context, slug string) (*domain.Facility, error) {
	r.getCalls++
	for _, f := range r.facilities {
		if f.Slug == slug {
			return f, nil
		}
	}
	return nil, facilityRepo.ErrFacilityNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedRepo() *countingRepo {
	return &countingRepo{facilities: []*domain.Facility{
		{ID: 1, Slug: "box-cricket-arena", Name: "Box Cricket Arena"},
		{ID: 3, Slug: "feather-court-zone", Name: "FeatherCourt Zone"},
	}}
}

func TestList_CachesCatalog(t *testing.T) {
	repo := seedRepo()
	svc := NewService(repo, time.Minute, nopLogger{})

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second call must hit the cache")
}

func TestGetByID_CachesPerFacility(t *testing.T) {
	repo := seedRepo()
	svc := NewService(repo, time.Minute, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestGetByID_NotFoundPassesRepoSentinel(t *testing.T) {
	svc := NewService(seedRepo(), time.Minute, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, facilityRepo.ErrFacilityNotFound)
}

func TestGetBySlug(t *testing.T) {
	svc := NewService(seedRepo(), time.Minute, nopLogger{})

	facility, err := svc.GetBySlug(context.Background(), "feather-court-zone")
	require.NoError(t, err)
	assert.Equal(t, int64(3), facility.ID)

	_, err = svc.GetBySlug(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
