package get_stadium

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums"
)

const (
	msgInvalidStadiumID = "invalid stadium id"
	msgNotFound         = "stadium not found"
)

type Handler struct {
	service StadiumService
	logger  Logger
}

func NewHandler(service StadiumService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/stadiums/{stadiumId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stadiumIDStr := mux.Vars(r)["stadiumId"]

	stadiumID, err := strconv.ParseInt(stadiumIDStr, 10, 64)
	if err != nil || stadiumID <= 0 {
		h.logger.Warn("GET /stadiums/{id} - Invalid stadium ID: %q", stadiumIDStr)
		handlers.RespondBadRequest(w, msgInvalidStadiumID)
		return
	}

	stadium, err := h.service.GetByID(r.Context(), stadiumID)
	if err != nil {
		if errors.Is(err, stadiums.ErrStadiumNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		ref := handlers.RespondInternalError(w)
		h.logger.Error("GET /stadiums/{id} - Failed to get stadium: ref=%s, stadium_id=%d, error=%v", ref, stadiumID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stadium)
}
