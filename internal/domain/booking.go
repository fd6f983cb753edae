package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid returns true if the payment status is one of the known values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Booking represents a stadium reservation for a time range on one date.
// The range is half-open: [StartTime, EndTime).
type Booking struct {
	ID            int64
	StadiumID     int64
	UserID        *int64 // nil for guest bookings
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	TotalPrice    decimal.Decimal
	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentMethod *string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// UserBooking is a booking joined with the stadium display fields
type UserBooking struct {
	Booking
	StadiumName     string
	StadiumLocation string
	StadiumDistrict string
	SportType       string
}

// StadiumBooking is a booking joined with the account fields of its owner (if any)
type StadiumBooking struct {
	Booking
	UserFullname *string
	UserEmail    *string
	UserPhone    *string
}

// StadiumBookingsFilter filters bookings of one stadium
type StadiumBookingsFilter struct {
	StadiumID       int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода включительно (опционально)
	EndDate         *time.Time     // Конец периода включительно (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые, если Status не задан
}

// IsSingleDay returns true if the filter targets exactly one date
func (f StadiumBookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && SameDate(*f.StartDate, *f.EndDate)
}

// BookingUpdate is a partial update of a booking. Nil fields are left unchanged.
type BookingUpdate struct {
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
	PaymentMethod *string
	Notes         *string
}

// IsEmpty returns true if no field is set
func (u BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.PaymentMethod == nil && u.Notes == nil
}
