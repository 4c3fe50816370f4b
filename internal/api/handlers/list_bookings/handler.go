package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/domain"
	"github.com/GritX-web/GritX/internal/service/bookings"
	"github.com/GritX-web/GritX/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "invalid filter parameters"
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

// Handle GET /api/v1/admin/bookings?facilityId=&startDate=&endDate=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, bookings.ErrBackendUnavailable):
			h.logger.Error("GET /admin/bookings - Backend unavailable: %v", err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseFilter(r *http.Request) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if raw := query.Get("facilityId"); raw != "" {
		facilityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.FacilityID = &facilityID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
