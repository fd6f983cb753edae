package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStadiumNotFound возвращается, когда стадион не найден
	ErrStadiumNotFound = errors.New("create_booking: stadium not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активной бронью
	ErrSlotNotAvailable = errors.New("time slot unavailable")

	// ErrTimeout возвращается, когда операция не уложилась в таймаут
	ErrTimeout = errors.New("create_booking: operation timed out")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации с перечнем проблемных полей
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func missingFields(fields []string) *ValidationError {
	return &ValidationError{
		Fields: fields,
		Reason: "missing required fields: " + strings.Join(fields, ", "),
	}
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}

// NewFieldError ошибка формата поля (используется при разборе запроса)
func NewFieldError(field, reason string) error {
	return invalidField(field, reason)
}
