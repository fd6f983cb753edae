package get_available_slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	StadiumID int64     // ID стадиона
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	Date      time.Time
	StadiumID int64
	Slots     []Slot
}

// Slot интервал [StartTime, EndTime) с признаком доступности
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Price     decimal.Decimal // Стоимость слота по часовой цене стадиона
}

// Hours часы работы и шаг сетки слотов
type Hours struct {
	Open                types.TimeString
	Close               types.TimeString
	SlotDurationMinutes int
}
