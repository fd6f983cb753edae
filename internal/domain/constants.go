package domain

// Defaults
const (
	DefaultPaymentMethod       = "online"
	DefaultOpenTime            = "06:00"
	DefaultCloseTime           = "23:00"
	DefaultSlotDurationMinutes = 60
)

// Validation limits
const (
	MaxNotesLength         = 1000
	MaxCustomerNameLength  = 255
	MaxCustomerEmailLength = 255
	MaxCustomerPhoneLength = 32
	MaxPaymentMethodLength = 50

	MaxStadiumNameLength     = 255
	MaxStadiumLocationLength = 255
	MaxStadiumDistrictLength = 100
	MaxSportTypeLength       = 50

	// Суммы хранятся как NUMERIC(12,2)
	PriceScale     = 2
	PriceMaxDigits = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
