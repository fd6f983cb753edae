package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings"
)

const (
	msgInvalidUserID = "invalid user id"
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

// Handle GET /api/bookings/user/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userIDStr := mux.Vars(r)["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /bookings/user/{userId} - Invalid user ID: %q", userIDStr)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/user/{userId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		ref := handlers.RespondInternalError(w)
		h.logger.Error("GET /bookings/user/{userId} - Failed to get bookings: ref=%s, user_id=%d, error=%v",
			ref, userID, err)
		return
	}

	h.logger.Info("GET /bookings/user/{userId} - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
