package get_available_slots

import "errors"

var (
	// ErrStadiumNotFound возвращается, когда стадион не найден
	ErrStadiumNotFound = errors.New("stadium not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
