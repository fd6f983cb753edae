package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// Request модель запроса на создание бронирования
// Нулевые значения означают, что поле не передано
type Request struct {
	StadiumID     int64            // ID стадиона
	UserID        *int64           // ID пользователя (nil для гостя)
	BookingDate   time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Начало интервала, включительно
	EndTime       types.TimeString // Конец интервала, не включительно
	TotalPrice    *decimal.Decimal // Стоимость
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod *string // По умолчанию из конфигурации
	Notes         *string
}

// Response модель ответа с созданным бронированием
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
