package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse тело ответа с сообщением и объектом
type MessageResponse struct {
	Message string      `json:"message"`
	Booking interface{} `json:"booking"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет {error}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondErrorDetails пишет {error, details}
func RespondErrorDetails(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondTimeout 504, операция не уложилась в таймаут
func RespondTimeout(w http.ResponseWriter) {
	RespondError(w, http.StatusGatewayTimeout, "operation timed out")
}

// RespondInternalError 500 с непрозрачной ссылкой для поиска в логах
// Возвращает ссылку, чтобы handler записал её в лог вместе с исходной ошибкой
func RespondInternalError(w http.ResponseWriter) string {
	ref := uuid.NewString()
	RespondErrorDetails(w, http.StatusInternalServerError, "internal server error", fmt.Sprintf("reference: %s", ref))
	return ref
}

// DecodeJSON разбирает тело запроса в dst
// Неизвестные поля игнорируются, пустое тело считается ошибкой
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
