package stadium

import "errors"

var (
	// ErrStadiumNotFound возвращается, когда стадион не найден
	ErrStadiumNotFound = errors.New("stadium.repository: stadium not found")

	// ErrOwnerReference возвращается, когда owner_id не ссылается на существующего пользователя
	ErrOwnerReference = errors.New("stadium.repository: owner does not exist")

	// ErrInvalidValue возвращается, когда значение не помещается в колонку или нарушает CHECK
	ErrInvalidValue = errors.New("stadium.repository: value does not fit column")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stadium.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stadium.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stadium.repository: failed to scan row")
)
