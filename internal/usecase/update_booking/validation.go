package update_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

// toDomainUpdate проверяет запрос и собирает domain.BookingUpdate
func toDomainUpdate(req *Request) (domain.BookingUpdate, error) {
	var upd domain.BookingUpdate

	if req.BookingID <= 0 {
		return upd, &ValidationError{Field: "booking_id", Reason: "booking_id must be positive"}
	}

	if req.Status != nil && *req.Status != "" {
		status := domain.BookingStatus(*req.Status)
		if !status.IsValid() {
			return upd, &ValidationError{Field: "status", Reason: "invalid status"}
		}
		upd.Status = &status
	}

	if req.PaymentStatus != nil && *req.PaymentStatus != "" {
		paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
		if !paymentStatus.IsValid() {
			return upd, &ValidationError{Field: "payment_status", Reason: "invalid payment status"}
		}
		upd.PaymentStatus = &paymentStatus
	}

	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		if utf8.RuneCountInString(*req.PaymentMethod) > domain.MaxPaymentMethodLength {
			return upd, &ValidationError{
				Field:  "payment_method",
				Reason: fmt.Sprintf("payment_method must not exceed %d characters", domain.MaxPaymentMethodLength),
			}
		}
		upd.PaymentMethod = req.PaymentMethod
	}

	if req.Notes != nil {
		if utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
			return upd, &ValidationError{
				Field:  "notes",
				Reason: fmt.Sprintf("notes must not exceed %d characters", domain.MaxNotesLength),
			}
		}
		upd.Notes = req.Notes
	}

	if upd.IsEmpty() {
		return upd, &ValidationError{Reason: "no fields to update"}
	}

	return upd, nil
}

// reactivates сообщает, возвращает ли обновление отменённую бронь в активное состояние
func reactivates(current *domain.Booking, upd domain.BookingUpdate) bool {
	return !current.IsActive() && upd.Status != nil && *upd.Status != domain.StatusCancelled
}
