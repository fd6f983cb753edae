package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings/models"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *repoMock) ListByStadium(ctx context.Context, filter domain.StadiumBookingsFilter) ([]*domain.StadiumBooking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StadiumBooking), args.Error(1)
}

func (m *repoMock) ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserBooking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking() domain.Booking {
	return domain.Booking{
		ID:            5,
		StadiumID:     1,
		BookingDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalPrice:    decimal.RequireFromString("150.5"),
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
		CustomerName:  "Ann",
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &repoMock{}
	b := sampleBooking()
	repo.On("GetByID", mock.Anything, int64(5)).Return(&b, nil)
	repo.On("GetByID", mock.Anything, int64(6)).Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, errors.New("boom"))

	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.BookingDate)
	assert.Equal(t, "150.50", got.TotalPrice)
	assert.Equal(t, "10:00", got.StartTime)

	_, err = svc.GetByID(context.Background(), 6)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &repoMock{}
	repo.On("ListByUser", mock.Anything, int64(3)).Return([]*domain.UserBooking{
		{Booking: sampleBooking(), StadiumName: "Central", StadiumLocation: "Main st.", StadiumDistrict: "North", SportType: "football"},
	}, nil)
	repo.On("ListByUser", mock.Anything, int64(4)).Return([]*domain.UserBooking{}, nil)

	svc := NewService(repo, nopLogger{})

	got, err := svc.GetUserBookings(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Central", got[0].StadiumName)
	assert.Equal(t, "football", got[0].SportType)

	empty, err := svc.GetUserBookings(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.GetUserBookings(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetStadiumBookings(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("passes filter to repository", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("ListByStadium", mock.Anything, mock.MatchedBy(func(f domain.StadiumBookingsFilter) bool {
			return f.StadiumID == 1 && f.StartDate.Equal(start) && f.EndDate.Equal(end) &&
				f.Status != nil && *f.Status == domain.StatusPending && f.IncludeInactive
		})).Return([]*domain.StadiumBooking{{Booking: sampleBooking(), UserFullname: ptr.Ptr("Ann Lee")}}, nil)

		svc := NewService(repo, nopLogger{})
		got, err := svc.GetStadiumBookings(context.Background(), &models.GetStadiumBookingsRequest{
			StadiumID: 1, StartDate: &start, EndDate: &end, Status: ptr.Ptr("pending"),
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ann Lee", *got[0].Fullname)
	})

	t.Run("no status returns every status", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("ListByStadium", mock.Anything, mock.MatchedBy(func(f domain.StadiumBookingsFilter) bool {
			return f.Status == nil && f.IncludeInactive
		})).Return([]*domain.StadiumBooking{}, nil)

		svc := NewService(repo, nopLogger{})
		_, err := svc.GetStadiumBookings(context.Background(), &models.GetStadiumBookingsRequest{StadiumID: 1})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(&repoMock{}, nopLogger{})
		_, err := svc.GetStadiumBookings(context.Background(), &models.GetStadiumBookingsRequest{StadiumID: 1, Status: ptr.Ptr("archived")})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorContains(t, err, "invalid status")
	})

	t.Run("reversed period", func(t *testing.T) {
		svc := NewService(&repoMock{}, nopLogger{})
		_, err := svc.GetStadiumBookings(context.Background(), &models.GetStadiumBookingsRequest{StadiumID: 1, StartDate: &end, EndDate: &start})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
