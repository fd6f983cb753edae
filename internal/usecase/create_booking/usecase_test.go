package create_booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/internal/infra/broker/rabbitmq"
	bookingRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
	"github.com/m04kA/SMC-StadiumRental/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest(date time.Time, start, end types.TimeString) *Request {
	return &Request{
		StadiumID:     1,
		BookingDate:   date,
		StartTime:     start,
		EndTime:       end,
		TotalPrice:    ptr.Ptr(decimal.NewFromInt(100)),
		CustomerName:  "Ann Lee",
		CustomerEmail: "ann@example.com",
		CustomerPhone: "+100200300",
	}
}

func TestExecute_OverlapScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "10:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, "pending", first.PaymentStatus)

	_, err = f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "11:00", "13:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.EqualError(t, err, "time slot unavailable")

	_, err = f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "12:00", "14:00"))
	assert.NoError(t, err, "touching intervals do not overlap")

	_, err = f.uc.Execute(ctx, validRequest(day(2024, 6, 2), "10:00", "12:00"))
	assert.NoError(t, err, "different date")

	assert.Equal(t, 3, f.store.count())
	assert.Equal(t, 3, f.metrics.get(resultAccepted))
	assert.Equal(t, 1, f.metrics.get(resultConflict))
}

func TestExecute_IdempotentRejection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "18:00", "20:00"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "19:00", "21:00"))
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	}
	assert.Equal(t, 1, f.store.count())
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.store.rows = []*domain.Booking{{
		ID: 1, StadiumID: 1, BookingDate: day(2024, 6, 1),
		StartTime: "10:00", EndTime: "12:00", Status: domain.StatusCancelled,
	}}
	f.store.nextID = 1

	resp, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_ValidationCompleteness(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, []string{
		"stadium_id", "booking_date", "start_time", "end_time",
		"total_price", "customer_name", "customer_email", "customer_phone",
	}, vErr.Fields)
	assert.Equal(t, 0, f.store.count())
	assert.Equal(t, 1, f.metrics.get(resultRejected))
}

func TestExecute_ValidationRules(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		field  string
	}{
		{
			name:   "partially missing",
			modify: func(r *Request) { r.CustomerPhone = "  "; r.TotalPrice = nil },
			field:  "total_price",
		},
		{
			name:   "zero price",
			modify: func(r *Request) { r.TotalPrice = ptr.Ptr(decimal.Zero) },
			field:  "total_price",
		},
		{
			name:   "negative price",
			modify: func(r *Request) { r.TotalPrice = ptr.Ptr(decimal.NewFromInt(-5)) },
			field:  "total_price",
		},
		{
			name:   "end equals start",
			modify: func(r *Request) { r.EndTime = r.StartTime },
			field:  "end_time",
		},
		{
			name:   "end before start",
			modify: func(r *Request) { r.StartTime, r.EndTime = "12:00", "10:00" },
			field:  "end_time",
		},
		{
			name:   "malformed start",
			modify: func(r *Request) { r.StartTime = "25:00" },
			field:  "start_time",
		},
		{
			name:   "start at end of day",
			modify: func(r *Request) { r.StartTime, r.EndTime = types.EndOfDay, types.EndOfDay },
			field:  "start_time",
		},
		{
			name:   "price below cent",
			modify: func(r *Request) { r.TotalPrice = ptr.Ptr(decimal.RequireFromString("0.001")) },
			field:  "total_price",
		},
		{
			name:   "price above column precision",
			modify: func(r *Request) { r.TotalPrice = ptr.Ptr(decimal.RequireFromString("99999999999")) },
			field:  "total_price",
		},
		{
			name:   "phone longer than column",
			modify: func(r *Request) { r.CustomerPhone = strings.Repeat("1", domain.MaxCustomerPhoneLength+8) },
			field:  "customer_phone",
		},
		{
			name:   "name longer than column",
			modify: func(r *Request) { r.CustomerName = strings.Repeat("я", domain.MaxCustomerNameLength+1) },
			field:  "customer_name",
		},
		{
			name:   "non-positive user",
			modify: func(r *Request) { r.UserID = ptr.Ptr(int64(0)) },
			field:  "user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest(day(2024, 6, 1), "10:00", "12:00")
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
			assert.Equal(t, 0, f.store.count())
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	t.Run("stadium", func(t *testing.T) {
		f := newFixture()
		req := validRequest(day(2024, 6, 1), "10:00", "12:00")
		req.StadiumID = 404

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStadiumNotFound)
		assert.Equal(t, 0, f.store.count())
	})

	t.Run("user", func(t *testing.T) {
		f := newFixture()
		req := validRequest(day(2024, 6, 1), "10:00", "12:00")
		req.UserID = ptr.Ptr(int64(404))

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, 0, f.store.count())
	})

	t.Run("guest booking skips user lookup", func(t *testing.T) {
		f := newFixture()
		resp, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
		require.NoError(t, err)
		assert.Nil(t, resp.UserID)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestExecute_StorageBackstop(t *testing.T) {
	f := newFixture()
	f.store.createFn = func(*domain.Booking) error {
		return fmt.Errorf("%w: Create - execute insert: bookings_no_overlap", bookingRepo.ErrSlotNotAvailable)
	}

	_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.metrics.get(resultConflict))
}

func TestExecute_EndsAtMidnight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "23:00", types.EndOfDay))
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, resp.EndTime)

	_, err = f.uc.Execute(ctx, validRequest(day(2024, 6, 1), "23:30", types.EndOfDay))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_LimitsAccepted(t *testing.T) {
	f := newFixture()
	req := validRequest(day(2024, 6, 1), "10:00", "12:00")
	req.TotalPrice = ptr.Ptr(decimal.RequireFromString("9999999999.99"))
	req.CustomerPhone = strings.Repeat("1", domain.MaxCustomerPhoneLength)
	req.CustomerName = strings.Repeat("я", domain.MaxCustomerNameLength)
	req.CustomerEmail = "ann-without-at-sign"

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.count())
}

func TestExecute_StorageRejectsValues(t *testing.T) {
	f := newFixture()
	f.store.createFn = func(*domain.Booking) error {
		return fmt.Errorf("%w: Create: value too long for type character varying(32)", bookingRepo.ErrInvalidValue)
	}

	_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, f.metrics.get(resultRejected))
	assert.Equal(t, 0, f.metrics.get(resultError))
}

func TestExecute_StorageFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.store.createFn = func(*domain.Booking) error {
		return fmt.Errorf("%w: connection reset", bookingRepo.ErrExecQuery)
	}

	_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, f.store.count())
	assert.Equal(t, 1, f.metrics.get(resultError))
}

func TestExecute_Defaults(t *testing.T) {
	f := newFixture()
	req := validRequest(day(2024, 6, 1), "10:00", "12:00")
	req.UserID = ptr.Ptr(int64(10))
	req.Notes = ptr.Ptr("bring balls")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.PaymentMethod)
	assert.Equal(t, domain.DefaultPaymentMethod, *resp.PaymentMethod)
	assert.Equal(t, int64(10), *resp.UserID)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, 1, f.store.locks)

	f.publisher.AssertCalled(t, "Publish", mock.Anything, rabbitmq.RoutingBookingCreated, mock.AnythingOfType("rabbitmq.BookingEvent"))
}

func TestExecute_PublishFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	f.publisher.ExpectedCalls = nil
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("broker down"))

	_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.count())
}

type slowStadiums struct{}

func (slowStadiums) GetByID(ctx context.Context, _ int64) (*domain.Stadium, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestExecute_Timeout(t *testing.T) {
	f := newFixture()
	f.uc.stadiumRepo = slowStadiums{}
	f.uc.opts.Timeout = 20 * time.Millisecond

	_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), "10:00", "12:00"))
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 0, f.store.count())
	assert.Equal(t, 1, f.metrics.get(resultTimeout))
}

// Без блокировки (стадион, дата) параллельные запросы читают одно и то же
// состояние и проходят проверку пересечений одновременно
func TestExecute_ConcurrentOverlappingRequestsSerializedByDayLock(t *testing.T) {
	f := newFixture()
	f.store.readDelay = 5 * time.Millisecond
	const workers = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			from := types.TimeString(fmt.Sprintf("10:%02d", i))
			_, err := f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1), from, "12:00"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, ErrSlotNotAvailable) {
				conflicts++
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, f.store.count())
	assert.Equal(t, workers, f.store.locks)
}

func TestExecute_DifferentDaysDoNotBlockEachOther(t *testing.T) {
	f := newFixture()
	const days = 5

	var wg sync.WaitGroup
	errs := make([]error, days)
	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), validRequest(day(2024, 6, 1+i), "10:00", "12:00"))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, days, f.store.count())
}
