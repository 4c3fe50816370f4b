package list_contacts

import (
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/api/handlers/create_contact"
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

// ContactListResponse список обращений
type ContactListResponse struct {
	Contacts []*create_contact.ContactResponse `json:"contacts"`
	Total    int                               `json:"total"`
}

// Handle GET /api/v1/admin/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/contacts - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	responses := make([]*create_contact.ContactResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, create_contact.FromDomain(msg))
	}

	handlers.RespondJSON(w, http.StatusOK, &ContactListResponse{
		Contacts: responses,
		Total:    len(responses),
	})
}
