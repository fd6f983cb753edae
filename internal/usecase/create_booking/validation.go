package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// validateRequest проверяет наличие обязательных полей и их значения
// Отсутствующие поля перечисляются все сразу
func validateRequest(req *Request) error {
	missing := make([]string, 0)

	if req.StadiumID == 0 {
		missing = append(missing, "stadium_id")
	}
	if req.BookingDate.IsZero() {
		missing = append(missing, "booking_date")
	}
	if req.StartTime.IsZero() {
		missing = append(missing, "start_time")
	}
	if req.EndTime.IsZero() {
		missing = append(missing, "end_time")
	}
	if req.TotalPrice == nil {
		missing = append(missing, "total_price")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}

	if len(missing) > 0 {
		return missingFields(missing)
	}

	if req.StadiumID < 0 {
		return invalidField("stadium_id", "stadium_id must be positive")
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return invalidField("user_id", "user_id must be positive")
	}
	if !req.TotalPrice.IsPositive() {
		return invalidField("total_price", "total_price must be greater than 0")
	}
	if !req.TotalPrice.Equal(req.TotalPrice.Round(domain.PriceScale)) {
		return invalidField("total_price", fmt.Sprintf("total_price must have at most %d decimal places", domain.PriceScale))
	}
	if req.TotalPrice.GreaterThanOrEqual(decimal.New(1, domain.PriceMaxDigits)) {
		return invalidField("total_price", fmt.Sprintf("total_price must be less than 10^%d", domain.PriceMaxDigits))
	}
	if err := req.StartTime.Validate(); err != nil {
		return invalidField("start_time", fmt.Sprintf("invalid start_time: %v", err))
	}
	if req.StartTime.IsEndOfDay() {
		return invalidField("start_time", "start_time must be before 24:00")
	}
	if err := req.EndTime.Validate(); err != nil {
		return invalidField("end_time", fmt.Sprintf("invalid end_time: %v", err))
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return invalidField("end_time", "end_time must be after start_time")
	}

	customer := []struct {
		field, value string
		limit        int
	}{
		{"customer_name", strings.TrimSpace(req.CustomerName), domain.MaxCustomerNameLength},
		{"customer_email", strings.TrimSpace(req.CustomerEmail), domain.MaxCustomerEmailLength},
		{"customer_phone", strings.TrimSpace(req.CustomerPhone), domain.MaxCustomerPhoneLength},
	}
	for _, c := range customer {
		if utf8.RuneCountInString(c.value) > c.limit {
			return invalidField(c.field, fmt.Sprintf("%s must not exceed %d characters", c.field, c.limit))
		}
	}
	if req.PaymentMethod != nil && utf8.RuneCountInString(*req.PaymentMethod) > domain.MaxPaymentMethodLength {
		return invalidField("payment_method", fmt.Sprintf("payment_method must not exceed %d characters", domain.MaxPaymentMethodLength))
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return invalidField("notes", fmt.Sprintf("notes must not exceed %d characters", domain.MaxNotesLength))
	}

	return nil
}
