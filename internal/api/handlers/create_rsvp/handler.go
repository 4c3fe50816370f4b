package create_rsvp

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/service/events"
	"github.com/GritX-web/GritX/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEventID     = "invalid event id"
	msgEventNotFound      = "event not found"
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

// Handle POST /api/v1/events/{eventId}/rsvps
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(mux.Vars(r)["eventId"])
	if err != nil {
		h.logger.Warn("POST /events/{id}/rsvps - Invalid event id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.CreateRSVPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/%s/rsvps - Invalid request body: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRSVP(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("POST /events/%s/rsvps - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /events/%s/rsvps - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /events/%s/rsvps - Failed: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/%s/rsvps - RSVP created: id=%s", eventID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
