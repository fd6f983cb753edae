package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-StadiumRental/internal/usecase/update_booking"
)

const (
	msgUpdated            = "booking updated"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %q", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		var vErr *updateBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%d, %v", bookingID, vErr)
			handlers.RespondBadRequest(w, vErr.Reason)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id} - Slot not available on reactivation: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, updateBooking.ErrSlotNotAvailable.Error())

		case errors.Is(err, updateBooking.ErrTimeout):
			h.logger.Error("PATCH /bookings/{id} - Timed out: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondTimeout(w)

		default:
			ref := handlers.RespondInternalError(w)
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: ref=%s, booking_id=%d, error=%v",
				ref, bookingID, err)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{
		Message: msgUpdated,
		Booking: FromUseCaseResponse(result),
	})
}
