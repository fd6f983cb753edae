package create_booking

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/api/handlers"
	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	createBooking "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StadiumID     int64           `json:"stadium_id"`
	UserID        *int64          `json:"user_id,omitempty"`
	BookingDate   string          `json:"booking_date"` // "2024-06-01"
	StartTime     string          `json:"start_time"`   // "10:00"
	EndTime       string          `json:"end_time"`     // "12:00"
	TotalPrice    json.RawMessage `json:"total_price"`  // число или строка
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	StadiumID     int64   `json:"stadium_id"`
	UserID        *int64  `json:"user_id"`
	BookingDate   string  `json:"booking_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	TotalPrice    string  `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые поля остаются нулевыми (их перечислит валидация use case),
// некорректные значения возвращаются как ValidationError
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		StadiumID:     r.StadiumID,
		UserID:        r.UserID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}

	if r.BookingDate != "" {
		date, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, createBooking.NewFieldError("booking_date", "invalid booking_date, expected YYYY-MM-DD")
		}
		req.BookingDate = date
	}

	if r.StartTime != "" {
		start, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, createBooking.NewFieldError("start_time", "invalid start_time, expected HH:MM")
		}
		req.StartTime = start
	}

	if r.EndTime != "" {
		end, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, createBooking.NewFieldError("end_time", "invalid end_time, expected HH:MM")
		}
		req.EndTime = end
	}

	price, err := handlers.ParseDecimal(r.TotalPrice)
	if err != nil {
		return nil, createBooking.NewFieldError("total_price", "invalid total_price, expected a decimal number")
	}
	req.TotalPrice = price

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		StadiumID:     resp.StadiumID,
		UserID:        resp.UserID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		TotalPrice:    resp.TotalPrice.StringFixed(2),
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		PaymentMethod: resp.PaymentMethod,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
