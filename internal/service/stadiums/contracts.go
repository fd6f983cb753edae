package stadiums

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// StadiumRepository интерфейс репозитория стадионов
type StadiumRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stadium, error)
	List(ctx context.Context, filter domain.StadiumFilter) ([]*domain.Stadium, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
