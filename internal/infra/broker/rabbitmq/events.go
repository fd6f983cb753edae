package rabbitmq

import (
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// BookingEvent полезная нагрузка событий booking.created / booking.updated
type BookingEvent struct {
	BookingID     int64     `json:"booking_id"`
	StadiumID     int64     `json:"stadium_id"`
	UserID        *int64    `json:"user_id,omitempty"`
	BookingDate   string    `json:"booking_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	TotalPrice    string    `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewBookingEvent формирует событие из бронирования
func NewBookingEvent(b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:     b.ID,
		StadiumID:     b.StadiumID,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		TotalPrice:    b.TotalPrice.StringFixed(2),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		OccurredAt:    at.UTC(),
	}
}
