package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgInvalidStatus      = "status must be confirmed or cancelled"
	msgAlreadyDecided     = "booking status is already decided"
	msgVerificationFailed = "status update could not be verified, please re-check the booking"
	msgUnavailable        = "service is temporarily unavailable, please try again"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid status %q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/%s/status - Already decided", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgAlreadyDecided)

		case errors.Is(err, bookings.ErrVerificationFailed):
			h.logger.Error("PATCH /admin/bookings/%s/status - Verification failed", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgVerificationFailed)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("PATCH /admin/bookings/%s/status - Backend unavailable: %v", bookingID, err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("PATCH /admin/bookings/%s/status - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%s/status - Status set to %s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
