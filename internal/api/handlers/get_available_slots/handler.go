package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StadiumRental/internal/usecase/get_available_slots"
)

const (
	msgInvalidStadiumID = "invalid stadium id"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgStadiumNotFound  = "stadium not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/stadiums/{stadiumId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stadiumIDStr := mux.Vars(r)["stadiumId"]
	stadiumID, err := strconv.ParseInt(stadiumIDStr, 10, 64)
	if err != nil || stadiumID <= 0 {
		h.logger.Warn("GET /stadiums/{id}/available-slots - Invalid stadium ID: %q", stadiumIDStr)
		handlers.RespondBadRequest(w, msgInvalidStadiumID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stadiums/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stadiumID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stadiums/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStadiumNotFound):
			h.logger.Warn("GET /stadiums/{id}/available-slots - Stadium not found: stadium_id=%d", stadiumID)
			handlers.RespondNotFound(w, msgStadiumNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stadiums/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			ref := handlers.RespondInternalError(w)
			h.logger.Error("GET /stadiums/{id}/available-slots - Failed to get slots: ref=%s, stadium_id=%d, error=%v",
				ref, stadiumID, err)
		}
		return
	}

	h.logger.Info("GET /stadiums/{id}/available-slots - Slots retrieved successfully: stadium_id=%d, date=%s, slots_count=%d",
		stadiumID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
