package create_stadium

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// StadiumRepository интерфейс репозитория стадионов
type StadiumRepository interface {
	Create(ctx context.Context, stadium *domain.Stadium) (*domain.Stadium, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// StadiumCache сбрасывает закэшированный стадион
type StadiumCache interface {
	Invalidate(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
