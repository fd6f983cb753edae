package get_stadium_bookings

import (
	"context"

	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings/models"
)

type BookingService interface {
	GetStadiumBookings(ctx context.Context, req *models.GetStadiumBookingsRequest) ([]models.StadiumBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
