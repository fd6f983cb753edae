package get_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/service/users"
)

const (
	msgInvalidUserID = "invalid user id"
	msgNotFound      = "user not found"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userIDStr := mux.Vars(r)["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id} - Invalid user ID: %q", userIDStr)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		ref := handlers.RespondInternalError(w)
		h.logger.Error("GET /users/{id} - Failed to get user: ref=%s, user_id=%d, error=%v", ref, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
