package get_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/api/handlers/list_facilities"
	"github.com/GritX-web/GritX/internal/service/facilities"
)

const (
	msgFacilityNotFound = "facility not found"
)

type Handler struct {
	service FacilitiesService
	logger  Logger
}

func NewHandler(service FacilitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	facility, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/%s - Not found", slug)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/%s - Failed: %v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list_facilities.FromDomain(facility))
}
