package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/internal/infra/broker/rabbitmq"
	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
)

// Исходы обновления для метрик
const (
	resultUpdated  = "updated"
	resultRejected = "rejected"
	resultNotFound = "not_found"
	resultConflict = "conflict"
	resultTimeout  = "timeout"
	resultError    = "error"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
	timeout     time.Duration
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
	timeout time.Duration,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Execute применяет переданные поля и всегда обновляет updated_at
// Строка бронирования блокируется на время транзакции. Восстановление отменённой
// брони повторно проверяет пересечения под блокировкой (стадион, дата)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	upd, err := toDomainUpdate(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed for booking id=%d: %v", req.BookingID, err)
		uc.metrics.ObserveUpdate(resultRejected)
		return nil, err
	}

	opCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	var result *domain.Booking

	err = uc.txManager.Do(opCtx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if reactivates(current, upd) {
			if err := uc.checkSlotFree(txCtx, current); err != nil {
				return err
			}
		}

		updated, err := uc.bookingRepo.Update(txCtx, req.BookingID, upd)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrInvalidValue):
				uc.logger.Warn("UpdateBooking: storage rejected values for booking id=%d: %v", req.BookingID, err)
				return &ValidationError{Reason: "booking values exceed storage limits"}
			}
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.fail(opCtx, req.BookingID, err)
	}

	uc.metrics.ObserveUpdate(resultUpdated)
	uc.logger.Info("UpdateBooking: booking id=%d updated, status=%s, payment_status=%s",
		result.ID, result.Status, result.PaymentStatus)

	event := rabbitmq.NewBookingEvent(result, uc.now())
	if pubErr := uc.publisher.Publish(ctx, rabbitmq.RoutingBookingUpdated, event); pubErr != nil {
		uc.logger.Warn("UpdateBooking: failed to publish event for booking id=%d: %v", result.ID, pubErr)
	}

	return toResponse(result), nil
}

// checkSlotFree проверяет, что интервал отменённой брони не занят другой активной
func (uc *UseCase) checkSlotFree(ctx context.Context, current *domain.Booking) error {
	if err := uc.bookingRepo.LockSlotDay(ctx, current.StadiumID, current.BookingDate); err != nil {
		return fmt.Errorf("%w: failed to lock slot day: %v", ErrInternal, err)
	}

	date := current.BookingDate
	bookings, err := uc.bookingRepo.GetByStadiumWithFilter(ctx, domain.StadiumBookingsFilter{
		StadiumID: current.StadiumID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if overlapping := domain.FindOverlapping(bookings, current.StartTime, current.EndTime, current.ID); len(overlapping) > 0 {
		uc.logger.Warn("UpdateBooking: cannot reactivate booking id=%d, overlaps booking id=%d",
			current.ID, overlapping[0].ID)
		return ErrSlotNotAvailable
	}
	return nil
}

func (uc *UseCase) fail(opCtx context.Context, id int64, err error) error {
	switch {
	case errors.Is(opCtx.Err(), context.DeadlineExceeded):
		uc.metrics.ObserveUpdate(resultTimeout)
		uc.logger.Error("UpdateBooking: booking id=%d timed out: %v", id, err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, ErrBookingNotFound):
		uc.metrics.ObserveUpdate(resultNotFound)
		uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.ObserveUpdate(resultConflict)
	case errors.Is(err, ErrInvalidInput):
		uc.metrics.ObserveUpdate(resultRejected)
	default:
		uc.metrics.ObserveUpdate(resultError)
		uc.logger.Error("UpdateBooking: booking id=%d: %v", id, err)
		if !errors.Is(err, ErrInternal) {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return err
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		StadiumID:     b.StadiumID,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
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
