package create_stadium

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/api/middleware"
	createStadium "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_stadium"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgOwnerNotFound      = "owner not found"
)

type Handler struct {
	useCase CreateStadiumUseCase
	logger  Logger
}

func NewHandler(useCase CreateStadiumUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/stadiums
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateStadiumRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stadiums - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.respondValidation(w, err)
		return
	}

	// Без owner_id владельцем считается аутентифицированный пользователь
	if useCaseReq.OwnerID == nil {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			useCaseReq.OwnerID = &userID
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createStadium.ErrInvalidInput):
			h.respondValidation(w, err)

		case errors.Is(err, createStadium.ErrOwnerNotFound):
			h.logger.Warn("POST /stadiums - Owner not found: owner_id=%v", useCaseReq.OwnerID)
			handlers.RespondBadRequest(w, msgOwnerNotFound)

		default:
			ref := handlers.RespondInternalError(w)
			h.logger.Error("POST /stadiums - Failed to create stadium: ref=%s, error=%v", ref, err)
		}
		return
	}

	h.logger.Info("POST /stadiums - Stadium created successfully: stadium_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondValidation(w http.ResponseWriter, err error) {
	h.logger.Warn("POST /stadiums - Validation failed: %v", err)

	var vErr *createStadium.ValidationError
	if errors.As(err, &vErr) {
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgValidationFailed, map[string]interface{}{
			"reason": vErr.Reason,
			"fields": vErr.Fields,
		})
		return
	}
	handlers.RespondBadRequest(w, msgValidationFailed)
}
