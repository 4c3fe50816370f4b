package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/service/bookings"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
)

const (
	msgAccessDenied  = "you can only view your own bookings"
	msgInvalidStatus = "invalid status filter"
	msgUnavailable   = "service is temporarily unavailable, please try again"
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

// Handle GET /api/v1/users/{userId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authz.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "missing user identity")
		return
	}

	userID := mux.Vars(r)["userId"]

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req, identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/%s/bookings - Access denied for user=%s", userID, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/%s/bookings - Invalid input: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("GET /users/%s/bookings - Backend unavailable: %v", userID, err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /users/%s/bookings - Failed: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
