package create_event

import (
	"errors"
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/authz"
	"github.com/GritX-web/GritX/internal/service/events"
	"github.com/GritX-web/GritX/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/admin/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Фиксируем автора мероприятия
	if identity, ok := authz.IdentityFromContext(r.Context()); ok && req.CreatedBy == nil {
		req.CreatedBy = &identity.UserID
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /admin/events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/events - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/events - Event created: id=%s, title=%q", result.ID, result.Title)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
