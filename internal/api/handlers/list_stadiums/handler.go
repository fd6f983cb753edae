package list_stadiums

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
)

const msgInvalidActive = "invalid active parameter, expected true or false"

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

// Handle GET /api/stadiums
// Query params: district, sport_type, active (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &models.ListStadiumsRequest{}

	if v := q.Get("district"); v != "" {
		req.District = &v
	}
	if v := q.Get("sport_type"); v != "" {
		req.SportType = &v
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /stadiums - Invalid active parameter: %q", v)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		req.ActiveOnly = active
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		ref := handlers.RespondInternalError(w)
		h.logger.Error("GET /stadiums - Failed to list stadiums: ref=%s, error=%v", ref, err)
		return
	}

	h.logger.Info("GET /stadiums - Stadiums retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
