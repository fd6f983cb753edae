package bookings

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByStadium(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.StadiumBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
