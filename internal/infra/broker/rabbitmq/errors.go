package rabbitmq

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("rabbitmq: failed to connect")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("rabbitmq: failed to publish")
)
