package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает все бронирования пользователя любого статуса
func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]models.UserBookingResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainUserBookings(bookings), nil
}

// GetStadiumBookings получает бронирования стадиона с фильтрацией
// Без фильтра по статусу возвращаются все бронирования, включая отменённые
func (s *Service) GetStadiumBookings(ctx context.Context, req *models.GetStadiumBookingsRequest) ([]models.StadiumBookingResponse, error) {
	s.logger.Info("GetStadiumBookings: fetching bookings for stadium=%d", req.StadiumID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStadiumBookings: invalid filter for stadium=%d: %v", req.StadiumID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListByStadium(ctx, filter)
	if err != nil {
		s.logger.Error("GetStadiumBookings: repository error for stadium=%d: %v", req.StadiumID, err)
		return nil, fmt.Errorf("%w: GetStadiumBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStadiumBookings: successfully fetched %d bookings for stadium=%d", len(bookings), req.StadiumID)
	return models.FromDomainStadiumBookings(bookings), nil
}

