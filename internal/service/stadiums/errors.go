package stadiums

import "errors"

var (
	// ErrStadiumNotFound возвращается, когда стадион не найден
	ErrStadiumNotFound = errors.New("stadium not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
