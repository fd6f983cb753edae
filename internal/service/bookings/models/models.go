package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("startDate must not be after endDate")
)

// Request модели

// GetStadiumBookingsRequest запрос на получение бронирований стадиона
type GetStadiumBookingsRequest struct {
	StadiumID int64
	StartDate *time.Time // Начало периода включительно (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
	Status    *string    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStadiumBookingsRequest) ToDomainFilter() (domain.StadiumBookingsFilter, error) {
	filter := domain.StadiumBookingsFilter{
		StadiumID:       r.StadiumID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: true,
	}

	if r.StadiumID <= 0 {
		return filter, fmt.Errorf("stadium id must be positive")
	}
	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidPeriod
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus проверяет и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q, expected one of %v", ErrInvalidStatus, s, domain.BookingStatuses)
	}
	return status, nil
}

// Response модели

// BookingResponse бронирование в формате API
type BookingResponse struct {
	ID            int64   `json:"id"`
	StadiumID     int64   `json:"stadium_id"`
	UserID        *int64  `json:"user_id"`
	BookingDate   string  `json:"booking_date"` // "2024-06-01"
	StartTime     string  `json:"start_time"`   // "10:00"
	EndTime       string  `json:"end_time"`     // "12:00"
	TotalPrice    string  `json:"total_price"`  // "100.00"
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Notes         *string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBookingResponse бронирование пользователя с данными стадиона
type UserBookingResponse struct {
	BookingResponse
	StadiumName string `json:"stadium_name"`
	Location    string `json:"location"`
	District    string `json:"district"`
	SportType   string `json:"sport_type"`
}

// StadiumBookingResponse бронирование стадиона с данными аккаунта (если есть)
type StadiumBookingResponse struct {
	BookingResponse
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		StadiumID:     b.StadiumID,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		TotalPrice:    b.TotalPrice.StringFixed(2),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: b.PaymentMethod,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainUserBookings конвертирует бронирования пользователя в DTO
func FromDomainUserBookings(bookings []*domain.UserBooking) []UserBookingResponse {
	return lo.Map(bookings, func(b *domain.UserBooking, _ int) UserBookingResponse {
		return UserBookingResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			StadiumName:     b.StadiumName,
			Location:        b.StadiumLocation,
			District:        b.StadiumDistrict,
			SportType:       b.SportType,
		}
	})
}

// FromDomainStadiumBookings конвертирует бронирования стадиона в DTO
func FromDomainStadiumBookings(bookings []*domain.StadiumBooking) []StadiumBookingResponse {
	return lo.Map(bookings, func(b *domain.StadiumBooking, _ int) StadiumBookingResponse {
		return StadiumBookingResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			Fullname:        b.UserFullname,
			Email:           b.UserEmail,
			Phone:           b.UserPhone,
		}
	})
}
