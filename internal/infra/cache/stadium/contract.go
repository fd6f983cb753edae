package stadium

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// Repository источник данных о стадионах
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stadium, error)
	List(ctx context.Context, filter domain.StadiumFilter) ([]*domain.Stadium, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
