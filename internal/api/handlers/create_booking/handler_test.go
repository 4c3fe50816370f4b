package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/authz"
	createBooking "github.com/GritX-web/GritX/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRequest(t *testing.T, body interface{}, identity *authz.Identity) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	if identity != nil {
		req = req.WithContext(authz.WithIdentity(req.Context(), *identity))
	}
	return req
}

func validBody() *CreateBookingRequest {
	return &CreateBookingRequest{
		FacilityID: 1,
		UserName:   "Rohan Mehta",
		Date:       "2026-03-14",
		StartTime:  "10:00",
		EndTime:    "11:00",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:           uuid.New(),
			FacilityID:   1,
			FacilityName: "Box Cricket Arena",
			UserID:       "user-1",
			UserName:     "Rohan Mehta",
			Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime:    "10:00",
			EndTime:      "11:00",
			StartMin:     600,
			EndMin:       660,
			Status:       "pending",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody(), &authz.Identity{UserID: "user-1", Email: "rohan@example.com"}))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, float64(0), resp.TotalPrice)
	assert.Equal(t, "11:00", resp.EndTime)

	// Контакты должны прийти из личности запрашивающего
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "user-1", uc.gotReq.UserID)
	require.NotNil(t, uc.gotReq.UserEmail)
	assert.Equal(t, "rohan@example.com", *uc.gotReq.UserEmail)
}

func TestHandle_ConflictCodes(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "slot taken by another user",
			useCaseErr: createBooking.ErrSlotTaken,
			wantStatus: http.StatusConflict,
			wantCode:   handlers.CodeSlotTaken,
		},
		{
			name:       "duplicate booking by the same user",
			useCaseErr: createBooking.ErrDuplicateOwnBooking,
			wantStatus: http.StatusConflict,
			wantCode:   handlers.CodeDuplicateOwn,
		},
		{
			name:       "unparseable start time",
			useCaseErr: createBooking.ErrInvalidTimeSelection,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeInvalidTime,
		},
		{
			name:       "facility not found",
			useCaseErr: createBooking.ErrFacilityNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   handlers.CodeNotFound,
		},
		{
			name:       "invalid input",
			useCaseErr: createBooking.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "storage unavailable",
			useCaseErr: createBooking.ErrBackendUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   handlers.CodeServiceUnavailable,
		},
		{
			name:       "unexpected failure",
			useCaseErr: createBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
			wantCode:   handlers.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.useCaseErr}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(t, validBody(), &authz.Identity{UserID: "user-1"}))

			require.Equal(t, tt.wantStatus, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantCode, errResp.Code)
		})
	}
}

func TestHandle_MissingIdentity(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody(), nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := validBody()
	body.Date = "14-03-2026"

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, body, &authz.Identity{UserID: "user-1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		bytes.NewReader([]byte(`{"facilityId": 1, "totallyUnknown": true}`)))
	req = req.WithContext(authz.WithIdentity(req.Context(), authz.Identity{UserID: "user-1"}))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
