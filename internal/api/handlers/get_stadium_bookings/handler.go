package get_stadium_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings"
)

const (
	msgInvalidStadiumID = "invalid stadium id"
	msgInvalidParams    = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/stadiums/{stadiumId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD, включительно), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stadiumIDStr := mux.Vars(r)["stadiumId"]

	stadiumID, err := strconv.ParseInt(stadiumIDStr, 10, 64)
	if err != nil || stadiumID <= 0 {
		h.logger.Warn("GET /stadiums/{id}/bookings - Invalid stadium ID: %q", stadiumIDStr)
		handlers.RespondBadRequest(w, msgInvalidStadiumID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(stadiumID, q.Get("startDate"), q.Get("endDate"), q.Get("status"))
	if err != nil {
		h.logger.Warn("GET /stadiums/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidParams, err.Error())
		return
	}

	result, err := h.service.GetStadiumBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /stadiums/{id}/bookings - Invalid filter: stadium_id=%d, error=%v", stadiumID, err)
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidParams, err.Error())

		default:
			ref := handlers.RespondInternalError(w)
			h.logger.Error("GET /stadiums/{id}/bookings - Failed to get bookings: ref=%s, stadium_id=%d, error=%v",
				ref, stadiumID, err)
		}
		return
	}

	h.logger.Info("GET /stadiums/{id}/bookings - Bookings retrieved successfully: stadium_id=%d, count=%d",
		stadiumID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
