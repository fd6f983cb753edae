package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
)

// UseCase use case для получения сетки слотов стадиона на день
type UseCase struct {
	bookingRepo  BookingRepository
	stadiumRepo  StadiumRepository
	hours        Hours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stadiumRepo StadiumRepository,
	hours Hours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		stadiumRepo:  stadiumRepo,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stadium=%d, date=%s", req.StadiumID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.StadiumID <= 0 {
		return nil, fmt.Errorf("%w: stadium_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)
	response := &Response{Date: date, StadiumID: req.StadiumID, Slots: []Slot{}}

	// 2. Получаем стадион
	stadium, err := uc.stadiumRepo.GetByID(ctx, req.StadiumID)
	if err != nil {
		if errors.Is(err, stadiumRepo.ErrStadiumNotFound) {
			uc.logger.Warn("GetAvailableSlots: stadium id=%d not found", req.StadiumID)
			return nil, ErrStadiumNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get stadium id=%d: %v", req.StadiumID, err)
		return nil, fmt.Errorf("%w: failed to get stadium: %v", ErrInternal, err)
	}

	// Неактивный стадион не принимает брони
	if !stadium.IsActive {
		uc.logger.Info("GetAvailableSlots: stadium id=%d is inactive", req.StadiumID)
		return response, nil
	}

	// 3. Генерируем сетку слотов
	timeSlots := generateTimeSlots(uc.hours, date, uc.timeProvider.Now())
	if len(timeSlots) == 0 {
		return response, nil
	}

	// 4. Активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByStadiumWithFilter(ctx, domain.StadiumBookingsFilter{
		StadiumID: req.StadiumID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Доступность каждого слота
	response.Slots = markAvailability(timeSlots, uc.hours.SlotDurationMinutes, bookings, stadium.Price)

	uc.logger.Info("GetAvailableSlots: generated %d slots for stadium=%d, date=%s",
		len(response.Slots), req.StadiumID, date.Format(domain.DateFormat))

	return response, nil
}
