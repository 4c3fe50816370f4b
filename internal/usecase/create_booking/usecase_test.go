package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/domain"
	bookingStorage "github.com/GritX-web/GritX/internal/infra/storage/booking"
	facilityStorage "github.com/GritX-web/GritX/internal/infra/storage/facility"
	"github.com/GritX-web/GritX/internal/integrations/authprovider"
	"github.com/GritX-web/GritX/pkg/ptr"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetForFacilityDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

type fakeFacilities struct {
	err error
}

func (f *fakeFacilities) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Facility{ID: id, Name: "Futsal Flex Arena"}, nil
}

type fakeAuthClient struct {
	profile *authprovider.UserProfile
	err     error
}

func (f *fakeAuthClient) GetUserWithGracefulDegradation(_ context.Context, _ string) (*authprovider.UserProfile, error) {
	return f.profile, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	return NewUseCase(
		repo,
		&fakeFacilities{},
		&fakeAuthClient{err: authprovider.ErrServiceDegraded},
		fakeTxManager{},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		FacilityID: 2,
		UserID:     "user-1",
		UserName:   "Priya Sharma",
		Date:       time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "1.5h",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Zero(t, resp.TotalPrice)
	assert.Equal(t, 600, resp.StartMin)
	assert.Equal(t, 690, resp.EndMin)
	assert.Equal(t, "11:30", resp.EndTime)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "Futsal Flex Arena", resp.FacilityName)
}

func TestExecute_TwelveHourStart(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StartTime = "2:30 PM"
	req.EndTime = "4:00 PM"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 870, resp.StartMin)
	assert.Equal(t, 960, resp.EndMin)
}

func TestExecute_UnresolvableEndFallsBackToHour(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.EndTime = "whenever"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 600, resp.StartMin)
	assert.Equal(t, 660, resp.EndMin)
}

func TestExecute_InvalidStartRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.StartTime = "25:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSelection)
}

func TestExecute_ClockEndBeforeStartRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StartTime = "14:00"
	req.EndTime = "13:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSelection)
	assert.Nil(t, repo.created)
}

func TestExecute_SlotTakenByOtherUser(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{UserID: "other", StartMin: 630, EndMin: 690, Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DuplicateOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{UserID: "user-1", StartMin: 600, EndMin: 660, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateOwnBooking)
}

func TestExecute_TouchingWindowsDoNotConflict(t *testing.T) {
	// Existing 08:30-10:00 ends exactly where the new window starts
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{UserID: "other", StartMin: 510, EndMin: 600, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{UserID: "other", StartMin: 600, EndMin: 660, Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ExclusionConstraintMapsToSlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingStorage.ErrSlotConflict}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StorageDownOnListMapsToBackendUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{listErr: bookingStorage.ErrStoreUnavailable}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestExecute_StorageDownOnCreateMapsToBackendUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingStorage.ErrStoreUnavailable}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeFacilities{err: facilityStorage.ErrFacilityNotFound},
		&fakeAuthClient{err: authprovider.ErrServiceDegraded},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_ProfileEnrichesContacts(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(
		repo,
		&fakeFacilities{},
		&fakeAuthClient{profile: &authprovider.UserProfile{
			Email: "priya@example.com",
			Phone: "+91-98-7654-3210",
		}},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created.UserEmail)
	assert.Equal(t, "priya@example.com", *repo.created.UserEmail)
	require.NotNil(t, repo.created.UserPhone)
	assert.Equal(t, "+91-98-7654-3210", *repo.created.UserPhone)
}

func TestExecute_RequestContactsWinOverProfile(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(
		repo,
		&fakeFacilities{},
		&fakeAuthClient{profile: &authprovider.UserProfile{Email: "profile@example.com"}},
		fakeTxManager{},
		nopLogger{},
	)

	req := validRequest()
	req.UserEmail = ptr.Ptr("given@example.com")
	req.UserPhone = ptr.Ptr("+91-11-2222-3333")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "given@example.com", *repo.created.UserEmail)
	assert.Equal(t, "+91-11-2222-3333", *repo.created.UserPhone)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero facility", func(r *Request) { r.FacilityID = 0 }},
		{"empty user id", func(r *Request) { r.UserID = "  " }},
		{"empty user name", func(r *Request) { r.UserName = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
