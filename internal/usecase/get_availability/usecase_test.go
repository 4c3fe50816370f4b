package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/domain"
	bookingStorage "github.com/GritX-web/GritX/internal/infra/storage/booking"
	facilityStorage "github.com/GritX-web/GritX/internal/infra/storage/facility"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetForFacilityDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeFacilities struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilities) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	return f.facility, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultGrid() GridConfig {
	return GridConfig{
		OpenMinute:  domain.DefaultOpenMinute,
		CloseMinute: domain.DefaultCloseMinute,
		SlotMinutes: domain.DefaultSlotMinutes,
	}
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	facilities := &fakeFacilities{facility: &domain.Facility{ID: 1, Name: "Box Cricket Arena"}}
	return NewUseCase(repo, facilities, defaultGrid(), nopLogger{})
}

func testDate() time.Time {
	return time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
}

func booking(userID string, startMin, endMin int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		UserID:   userID,
		StartMin: startMin,
		EndMin:   endMin,
		Status:   status,
	}
}

func TestExecute_EmptyDayAllSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)

	// 08:00 through 19:00 inclusive, 60-minute grid
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "08:00", resp.Slots[0].Time)
	assert.Equal(t, "19:00", resp.Slots[11].Time)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
	}
}

func TestExecute_BookingBlocksOnlyItsSlot(t *testing.T) {
	// 10:00-11:00 booking must block the 10:00 slot and nothing else
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("u1", 600, 660, domain.StatusPending),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.StartMin == 600 {
			assert.False(t, slot.Available, "10:00 must be taken")
		} else {
			assert.True(t, slot.Available, "slot %s must stay free", slot.Time)
		}
	}
}

func TestExecute_LongBookingBlocksEverySpannedSlot(t *testing.T) {
	// 09:00-10:30 spans the 09:00 and 10:00 slots
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("u1", 540, 630, domain.StatusConfirmed),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)

	taken := map[int]bool{540: true, 600: true}
	for _, slot := range resp.Slots {
		assert.Equal(t, !taken[slot.StartMin], slot.Available, "slot %s", slot.Time)
	}
}

func TestExecute_CancelledAndDegenerateRowsIgnored(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("u1", 600, 660, domain.StatusCancelled),
		booking("u2", 720, 720, domain.StatusPending), // degenerate window
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("u1", 600, 720, domain.StatusPending),
	}}
	uc := newTestUseCase(repo)

	first, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_DurationRefinement(t *testing.T) {
	// 10:00 taken; a 2h request needs two consecutive free slots
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("u1", 600, 660, domain.StatusPending),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate(), Duration: "2h"})
	require.NoError(t, err)

	byStart := make(map[int]bool)
	for _, slot := range resp.Slots {
		byStart[slot.StartMin] = slot.Available
	}

	assert.False(t, byStart[540], "09:00 has no second free slot before the 10:00 booking")
	assert.False(t, byStart[600], "10:00 is taken outright")
	assert.True(t, byStart[660], "11:00 and 12:00 are both free")
	assert.False(t, byStart[1140], "19:00 is the last slot, no room for 2h")
}

func TestExecute_HalfHourDurationRoundsUp(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// 1.5h on a 60-minute grid needs two consecutive slots
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate(), Duration: "1.5h"})
	require.NoError(t, err)

	last := resp.Slots[len(resp.Slots)-1]
	assert.False(t, last.Available, "last slot cannot host 1.5h")
	assert.True(t, resp.Slots[len(resp.Slots)-2].Available)
}

func TestExecute_UnparseableDurationIgnored(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate(), Duration: "soon"})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_FacilityNotFound(t *testing.T) {
	facilities := &fakeFacilities{err: facilityStorage.ErrFacilityNotFound}
	uc := NewUseCase(&fakeBookingRepo{}, facilities, defaultGrid(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 99, Date: testDate()})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_StorageDownMapsToBackendUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingStorage.ErrStoreUnavailable}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FacilityID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
