package list_rsvps

import (
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
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

// Handle GET /api/v1/admin/rsvps
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRSVPs(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/rsvps - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
