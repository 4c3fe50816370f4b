package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/domain"
	bookingRepo "github.com/GritX-web/GritX/internal/infra/storage/booking"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
	"github.com/GritX-web/GritX/pkg/ptr"
)

type fakeRepo struct {
	bookings map[uuid.UUID]*domain.Booking

	// ghostStatus, если задан, подменяет статус при контрольном чтении
	ghostStatus *domain.BookingStatus
	updated     bool

	// getErr, если задан, возвращается из GetByID вместо результата
	getErr error
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if f.updated && f.ghostStatus != nil {
		ghost := *booking
		ghost.Status = *f.ghostStatus
		return &ghost, nil
	}
	return booking, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if f.ghostStatus == nil {
		booking.Status = status
	}
	f.updated = true
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeRepo) *Service {
	policy := authz.NewPolicy([]string{"ops@gritx.in"})
	return NewService(repo, policy, passthroughTx{}, nopLogger{})
}

func pendingBooking(userID string) *domain.Booking {
	return &domain.Booking{
		ID:       uuid.New(),
		UserID:   userID,
		UserName: "Test User",
		Date:     time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Status:   domain.StatusPending,
	}
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	resp, err := svc.GetByID(context.Background(), booking.ID, authz.Identity{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	_, err := svc.GetByID(context.Background(), booking.ID, authz.Identity{UserID: "user-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminByWhitelistSeesAny(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	identity := authz.Identity{UserID: "admin-1", Email: "ops@gritx.in"}
	_, err := svc.GetByID(context.Background(), booking.ID, identity)
	assert.NoError(t, err)
}

func TestGetByID_AdminByRoleSeesAny(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	identity := authz.Identity{UserID: "admin-2", Role: authz.RoleAdmin}
	_, err := svc.GetByID(context.Background(), booking.ID, identity)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), uuid.New(), authz.Identity{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_StorageDownMapsToBackendUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = bookingRepo.ErrStoreUnavailable
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New(), authz.Identity{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestGetUserBookings_ForeignUserDenied(t *testing.T) {
	svc := newService(newFakeRepo())

	req := &models.GetUserBookingsRequest{UserID: "user-1"}
	_, err := svc.GetUserBookings(context.Background(), req, authz.Identity{UserID: "user-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	confirmed := pendingBooking("user-1")
	confirmed.Status = domain.StatusConfirmed
	svc := newService(newFakeRepo(pendingBooking("user-1"), confirmed))

	req := &models.GetUserBookingsRequest{UserID: "user-1", Status: ptr.Ptr("confirmed")}
	resp, err := svc.GetUserBookings(context.Background(), req, authz.Identity{UserID: "user-1"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newService(newFakeRepo())

	req := &models.GetUserBookingsRequest{UserID: "user-1", Status: ptr.Ptr("archived")}
	_, err := svc.GetUserBookings(context.Background(), req, authz.Identity{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ConfirmsPending(t *testing.T) {
	booking := pendingBooking("user-1")
	repo := newFakeRepo(booking)
	svc := newService(repo)

	resp, err := svc.UpdateStatus(context.Background(), booking.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_CancelsPending(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	resp, err := svc.UpdateStatus(context.Background(), booking.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestUpdateStatus_RejectsPendingTarget(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	_, err := svc.UpdateStatus(context.Background(), booking.ID, "pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	booking := pendingBooking("user-1")
	svc := newService(newFakeRepo(booking))

	_, err := svc.UpdateStatus(context.Background(), booking.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_AlreadyDecided(t *testing.T) {
	booking := pendingBooking("user-1")
	booking.Status = domain.StatusConfirmed
	svc := newService(newFakeRepo(booking))

	_, err := svc.UpdateStatus(context.Background(), booking.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_VerificationFailure(t *testing.T) {
	booking := pendingBooking("user-1")
	repo := newFakeRepo(booking)
	repo.ghostStatus = ptr.Ptr(domain.StatusCancelled)
	svc := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
