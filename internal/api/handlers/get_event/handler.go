package get_event

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/service/events"
)

const (
	msgInvalidEventID = "invalid event id"
	msgEventNotFound  = "event not found"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(mux.Vars(r)["eventId"])
	if err != nil {
		h.logger.Warn("GET /events/{id} - Invalid event id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("GET /events/%s - Not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /events/%s - Failed: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
