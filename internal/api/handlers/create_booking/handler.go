package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_booking"
)

const (
	msgCreated            = "booking created"
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgStadiumNotFound    = "stadium not found"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.respondValidation(w, err)
		return
	}

	// user_id из тела имеет приоритет, иначе берём аутентифицированного пользователя
	if useCaseReq.UserID == nil {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			useCaseReq.UserID = &userID
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.respondValidation(w, vErr)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: stadium_id=%d, date=%s, %s-%s",
				req.StadiumID, req.BookingDate, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, createBooking.ErrSlotNotAvailable.Error())

		case errors.Is(err, createBooking.ErrStadiumNotFound):
			h.logger.Warn("POST /bookings - Stadium not found: stadium_id=%d", req.StadiumID)
			handlers.RespondBadRequest(w, msgStadiumNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%v", useCaseReq.UserID)
			handlers.RespondBadRequest(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrTimeout):
			h.logger.Error("POST /bookings - Timed out: stadium_id=%d, error=%v", req.StadiumID, err)
			handlers.RespondTimeout(w)

		default:
			ref := handlers.RespondInternalError(w)
			h.logger.Error("POST /bookings - Failed to create booking: ref=%s, stadium_id=%d, error=%v",
				ref, req.StadiumID, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, stadium_id=%d",
		result.ID, result.StadiumID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.MessageResponse{
		Message: msgCreated,
		Booking: FromUseCaseResponse(result),
	})
}

func (h *Handler) respondValidation(w http.ResponseWriter, err error) {
	h.logger.Warn("POST /bookings - Validation failed: %v", err)

	var vErr *createBooking.ValidationError
	if errors.As(err, &vErr) {
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, map[string]interface{}{
			"reason": vErr.Reason,
			"fields": vErr.Fields,
		})
		return
	}
	handlers.RespondBadRequest(w, msgValidationFailed)
}
