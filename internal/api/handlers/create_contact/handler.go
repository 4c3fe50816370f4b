package create_contact

import (
	"errors"
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/service/contacts"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service ContactsService
	logger  Logger
}

func NewHandler(service ContactsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contacts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("POST /contacts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /contacts - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contacts - Message created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
