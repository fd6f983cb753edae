package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotAvailable возвращается, когда восстановление отменённой брони пересекается с другой
	ErrSlotNotAvailable = errors.New("time slot unavailable")

	// ErrTimeout возвращается, когда операция не уложилась в таймаут
	ErrTimeout = errors.New("update_booking: operation timed out")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// ValidationError ошибка валидации запроса на обновление
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
