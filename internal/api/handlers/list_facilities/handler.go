package list_facilities

import (
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
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

// Handle GET /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	responses := make([]*FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		responses = append(responses, FromDomain(facility))
	}

	handlers.RespondJSON(w, http.StatusOK, &FacilityListResponse{
		Facilities: responses,
		Total:      len(responses),
	})
}
