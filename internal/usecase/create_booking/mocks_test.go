package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	userRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/user"
)

// memoryBookings хранилище бронирований в памяти
// LockSlotDay держит блокировку (стадион, дата) до конца транзакции fakeTx
type memoryBookings struct {
	mu        sync.Mutex
	rows      []*domain.Booking
	nextID    int64
	locks     int
	dayLocks  map[string]*sync.Mutex
	readDelay time.Duration
	createFn  func(b *domain.Booking) error
}

func (m *memoryBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFn != nil {
		if err := m.createFn(b); err != nil {
			return nil, err
		}
	}
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	m.rows = append(m.rows, &cp)
	return b, nil
}

func (m *memoryBookings) GetByStadiumWithFilter(_ context.Context, f domain.StadiumBookingsFilter) ([]*domain.Booking, error) {
	if m.readDelay > 0 {
		time.Sleep(m.readDelay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Booking, 0)
	for _, b := range m.rows {
		if b.StadiumID != f.StadiumID || !domain.SameDate(b.BookingDate, *f.StartDate) {
			continue
		}
		if !f.IncludeInactive && !b.IsActive() {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryBookings) LockSlotDay(ctx context.Context, stadiumID int64, date time.Time) error {
	held, ok := ctx.Value(heldLocksKey{}).(*heldLocks)
	if !ok {
		return errors.New("lock requires a transaction")
	}

	key := fmt.Sprintf("%d:%s", stadiumID, date.Format(domain.DateFormat))
	m.mu.Lock()
	m.locks++
	if m.dayLocks == nil {
		m.dayLocks = make(map[string]*sync.Mutex)
	}
	l, ok := m.dayLocks[key]
	if !ok {
		l = &sync.Mutex{}
		m.dayLocks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	held.unlock = append(held.unlock, l.Unlock)
	return nil
}

func (m *memoryBookings) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type heldLocksKey struct{}

type heldLocks struct {
	unlock []func()
}

// fakeTx не сериализует транзакции сама: порядок задают только блокировки LockSlotDay,
// которые снимаются при завершении транзакции, как pg_advisory_xact_lock
type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	held := &heldLocks{}
	defer func() {
		for _, unlock := range held.unlock {
			unlock()
		}
	}()
	return fn(context.WithValue(ctx, heldLocksKey{}, held))
}

type stadiumsMock struct {
	mock.Mock
}

func (m *stadiumsMock) GetByID(ctx context.Context, id int64) (*domain.Stadium, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stadium), args.Error(1)
}

type usersMock struct {
	mock.Mock
}

func (m *usersMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, routingKey string, event interface{}) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

type metricsSpy struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *metricsSpy) ObserveAdmission(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = make(map[string]int)
	}
	m.results[result]++
}

func (m *metricsSpy) get(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results[result]
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	store     *memoryBookings
	stadiums  *stadiumsMock
	users     *usersMock
	publisher *publisherMock
	metrics   *metricsSpy
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		store:     &memoryBookings{},
		stadiums:  &stadiumsMock{},
		users:     &usersMock{},
		publisher: &publisherMock{},
		metrics:   &metricsSpy{},
	}

	f.stadiums.On("GetByID", mock.Anything, int64(1)).Return(&domain.Stadium{ID: 1, Name: "Central", IsActive: true}, nil).Maybe()
	f.stadiums.On("GetByID", mock.Anything, int64(404)).Return(nil, stadiumRepo.ErrStadiumNotFound).Maybe()
	f.users.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10, Fullname: "Ann"}, nil).Maybe()
	f.users.On("GetByID", mock.Anything, int64(404)).Return(nil, userRepo.ErrUserNotFound).Maybe()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	f.uc = NewUseCase(
		f.store,
		f.stadiums,
		f.users,
		fakeTx{},
		f.publisher,
		f.metrics,
		nopLogger{},
		Options{Timeout: time.Second},
	)
	f.uc.timeProvider = fixedTime{now: time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC)}
	return f
}
