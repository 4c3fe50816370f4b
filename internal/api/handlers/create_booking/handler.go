package create_booking

import (
	"errors"
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/authz"
	createBooking "github.com/GritX-web/GritX/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgInvalidTime        = "start time could not be understood"
	msgSlotTaken          = "this slot is already taken"
	msgDuplicateOwn       = "you already have a booking for this slot"
	msgFacilityNotFound   = "facility not found"
	msgServiceUnavailable = "service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authz.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%s, facility_id=%d", identity.UserID, req.FacilityID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotTaken, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDuplicateOwnBooking):
			h.logger.Warn("POST /bookings - Duplicate own booking: user_id=%s, facility_id=%d", identity.UserID, req.FacilityID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeDuplicateOwn, msgDuplicateOwn)

		case errors.Is(err, createBooking.ErrInvalidTimeSelection):
			h.logger.Warn("POST /bookings - Invalid time selection: user_id=%s, start=%q", identity.UserID, req.StartTime)
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeInvalidTime, msgInvalidTime)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBackendUnavailable):
			h.logger.Error("POST /bookings - Backend unavailable: user_id=%s: %v", identity.UserID, err)
			handlers.RespondUnavailable(w, msgServiceUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, facility_id=%d, error=%v",
				identity.UserID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, facility_id=%d",
		result.ID, identity.UserID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
