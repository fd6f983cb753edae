package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// Request частичное обновление бронирования
// Пустые status/payment_status/payment_method считаются не переданными, notes можно очистить пустой строкой
type Request struct {
	BookingID     int64
	Status        *string
	PaymentStatus *string
	PaymentMethod *string
	Notes         *string
}

// Response обновлённое бронирование
type Response struct {
	ID            int64
	StadiumID     int64
	UserID        *int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	TotalPrice    decimal.Decimal
	Status        string
	PaymentStatus string
	PaymentMethod *string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
