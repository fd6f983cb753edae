package create_stadium

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_stadium: invalid input data")

	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("create_stadium: owner not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_stadium: internal error")
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

// NewFieldError ошибка формата поля (используется при разборе запроса)
func NewFieldError(field, reason string) error {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}

func missingFields(fields []string) *ValidationError {
	return &ValidationError{
		Fields: fields,
		Reason: "missing required fields: " + strings.Join(fields, ", "),
	}
}
