package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByStadiumWithFilter(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.Booking, error)
	LockSlotDay(ctx context.Context, stadiumID int64, date time.Time) error
	Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// Metrics счётчик исходов обновления
type Metrics interface {
	ObserveUpdate(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
