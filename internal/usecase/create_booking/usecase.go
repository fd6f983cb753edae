package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/internal/infra/broker/rabbitmq"
	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	userRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/user"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
)

// Исходы бронирования для метрик
const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultConflict = "conflict"
	resultTimeout  = "timeout"
	resultError    = "error"
)

// Options бизнес-настройки создания бронирования
type Options struct {
	Timeout              time.Duration
	DefaultPaymentMethod string
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	stadiumRepo  StadiumRepository
	userRepo     UserRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stadiumRepo StadiumRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.DefaultPaymentMethod == "" {
		opts.DefaultPaymentMethod = domain.DefaultPaymentMethod
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		stadiumRepo:  stadiumRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной транзакции под
// advisory-блокировкой (стадион, дата), поэтому конкурентные запросы на один день
// проходят проверку строго по очереди
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: stadium=%d, date=%s, time=%s-%s",
		req.StadiumID, req.BookingDate.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.ObserveAdmission(resultRejected)
		return nil, err
	}

	opCtx := ctx
	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	date := domain.DateOnly(req.BookingDate)
	var result *domain.Booking

	// 2. Все проверки и вставка в одной транзакции
	err := uc.txManager.Do(opCtx, func(txCtx context.Context) error {
		// 2.1. Стадион должен существовать
		if _, err := uc.stadiumRepo.GetByID(txCtx, req.StadiumID); err != nil {
			if errors.Is(err, stadiumRepo.ErrStadiumNotFound) {
				uc.logger.Warn("CreateBooking: stadium id=%d not found", req.StadiumID)
				return ErrStadiumNotFound
			}
			return fmt.Errorf("%w: failed to get stadium: %v", ErrInternal, err)
		}

		// 2.2. Пользователь проверяется, только если указан
		if req.UserID != nil {
			if _, err := uc.userRepo.GetByID(txCtx, *req.UserID); err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					uc.logger.Warn("CreateBooking: user id=%d not found", *req.UserID)
					return ErrUserNotFound
				}
				return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
			}
		}

		// 2.3. Сериализуем проверки по (стадион, дата)
		if err := uc.bookingRepo.LockSlotDay(txCtx, req.StadiumID, date); err != nil {
			return fmt.Errorf("%w: failed to lock slot day: %v", ErrInternal, err)
		}

		// 2.4. Активные бронирования на эту дату (FOR UPDATE)
		filter := domain.StadiumBookingsFilter{
			StadiumID: req.StadiumID,
			StartDate: &date,
			EndDate:   &date,
		}
		bookings, err := uc.bookingRepo.GetByStadiumWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.5. Проверка пересечения полуоткрытых интервалов
		if overlapping := domain.FindOverlapping(bookings, req.StartTime, req.EndTime, 0); len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: %s-%s overlaps booking id=%d (%s-%s)",
				req.StartTime, req.EndTime, overlapping[0].ID, overlapping[0].StartTime, overlapping[0].EndTime)
			return ErrSlotNotAvailable
		}

		// 2.6. Вставка
		created, err := uc.bookingRepo.Create(txCtx, uc.newBooking(req, date))
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrStadiumReference):
				return ErrStadiumNotFound
			case errors.Is(err, bookingRepo.ErrUserReference):
				return ErrUserNotFound
			case errors.Is(err, bookingRepo.ErrInvalidValue):
				uc.logger.Warn("CreateBooking: storage rejected values: %v", err)
				return &ValidationError{Reason: "booking values exceed storage limits"}
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.fail(opCtx, err)
	}

	uc.metrics.ObserveAdmission(resultAccepted)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 3. Событие публикуется после коммита, ошибка публикации не отменяет бронь
	event := rabbitmq.NewBookingEvent(result, uc.timeProvider.Now())
	if pubErr := uc.publisher.Publish(ctx, rabbitmq.RoutingBookingCreated, event); pubErr != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, pubErr)
	}

	return toResponse(result), nil
}

// fail классифицирует ошибку транзакции для метрик и логов
func (uc *UseCase) fail(opCtx context.Context, err error) error {
	switch {
	case errors.Is(opCtx.Err(), context.DeadlineExceeded):
		uc.metrics.ObserveAdmission(resultTimeout)
		uc.logger.Error("CreateBooking: operation timed out: %v", err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.ObserveAdmission(resultConflict)
	case errors.Is(err, ErrStadiumNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidInput):
		uc.metrics.ObserveAdmission(resultRejected)
	default:
		uc.metrics.ObserveAdmission(resultError)
		uc.logger.Error("CreateBooking: %v", err)
		if !errors.Is(err, ErrInternal) {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return err
}

func (uc *UseCase) newBooking(req *Request, date time.Time) *domain.Booking {
	paymentMethod := req.PaymentMethod
	if paymentMethod == nil || strings.TrimSpace(*paymentMethod) == "" {
		paymentMethod = ptr.Ptr(uc.opts.DefaultPaymentMethod)
	}

	return &domain.Booking{
		StadiumID:     req.StadiumID,
		UserID:        req.UserID,
		BookingDate:   date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalPrice:    *req.TotalPrice,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: paymentMethod,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         req.Notes,
	}
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
