package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByStadiumWithFilter(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.Booking, error)
	LockSlotDay(ctx context.Context, stadiumID int64, date time.Time) error
}

// StadiumRepository интерфейс репозитория стадионов
type StadiumRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stadium, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// Metrics счётчик исходов бронирования
type Metrics interface {
	ObserveAdmission(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
