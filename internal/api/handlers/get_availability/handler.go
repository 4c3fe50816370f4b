package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/domain"
	getAvailability "github.com/GritX-web/GritX/internal/usecase/get_availability"
)

const (
	msgInvalidFacilityID = "invalid facility id"
	msgInvalidDate       = "invalid date, expected YYYY-MM-DD"
	msgFacilityNotFound  = "facility not found"
	msgUnavailable       = "service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/availability?date=YYYY-MM-DD&duration=1.5h
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid facility id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /facilities/%d/availability - Invalid date: %v", facilityID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FacilityID: facilityID,
		Date:       date,
		Duration:   r.URL.Query().Get("duration"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/%d/availability - Facility not found", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/%d/availability - Invalid input: %v", facilityID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailability.ErrBackendUnavailable):
			h.logger.Error("GET /facilities/%d/availability - Backend unavailable: %v", facilityID, err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /facilities/%d/availability - Failed: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
