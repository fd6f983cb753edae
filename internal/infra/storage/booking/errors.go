package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда пересечение отклонено ограничением БД
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrStadiumReference возвращается, когда stadium_id не ссылается на существующий стадион
	ErrStadiumReference = errors.New("booking.repository: stadium does not exist")

	// ErrUserReference возвращается, когда user_id не ссылается на существующего пользователя
	ErrUserReference = errors.New("booking.repository: user does not exist")

	// ErrInvalidValue возвращается, когда значение не помещается в колонку или нарушает CHECK
	ErrInvalidValue = errors.New("booking.repository: value does not fit column")

	// ErrConstraint возвращается при нарушении прочих ограничений таблицы
	ErrConstraint = errors.New("booking.repository: constraint violation")

	// ErrTransaction возвращается, когда операция требует транзакции
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
