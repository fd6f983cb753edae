package create_stadium

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	stadiumRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/stadium"
	userRepo "github.com/m04kA/SMC-StadiumRental/internal/infra/storage/user"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stadiumRepoMock struct {
	mock.Mock
}

func (m *stadiumRepoMock) Create(ctx context.Context, s *domain.Stadium) (*domain.Stadium, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Stadium) *domain.Stadium); ok {
		return fn(ctx, s), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stadium), args.Error(1)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) Invalidate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		OwnerID:     ptr.Ptr(int64(5)),
		Name:        " Central ",
		Description: ptr.Ptr("  "),
		Location:    "Main st. 1",
		District:    "North",
		Price:       ptr.Ptr(decimal.RequireFromString("45.50")),
		Capacity:    22,
		SportType:   "football",
	}
}

func inserted(s *domain.Stadium) *domain.Stadium {
	cp := *s
	cp.ID = 11
	cp.IsActive = true
	cp.CreatedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &cp
}

func TestExecute_Created(t *testing.T) {
	stadiums := &stadiumRepoMock{}
	users := &userRepoMock{}
	cache := &cacheMock{}

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
	stadiums.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Stadium) bool {
		return s.Name == "Central" && s.Description == nil && s.Price.Equal(decimal.RequireFromString("45.5"))
	})).Return(func(_ context.Context, s *domain.Stadium) *domain.Stadium { return inserted(s) }, nil)
	cache.On("Invalidate", mock.Anything, int64(11)).Return(nil)

	resp, err := NewUseCase(stadiums, users, cache, passTx{}, nopLogger{}).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "Central", resp.Name)
	stadiums.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestExecute_WithoutCacheAndOwner(t *testing.T) {
	stadiums := &stadiumRepoMock{}
	users := &userRepoMock{}
	stadiums.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, s *domain.Stadium) *domain.Stadium { return inserted(s) }, nil)

	req := validRequest()
	req.OwnerID = nil

	resp, err := NewUseCase(stadiums, users, nil, passTx{}, nopLogger{}).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.OwnerID)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExecute_CacheFailureKeepsStadium(t *testing.T) {
	stadiums := &stadiumRepoMock{}
	users := &userRepoMock{}
	cache := &cacheMock{}
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
	stadiums.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, s *domain.Stadium) *domain.Stadium { return inserted(s) }, nil)
	cache.On("Invalidate", mock.Anything, int64(11)).Return(errors.New("redis down"))

	_, err := NewUseCase(stadiums, users, cache, passTx{}, nopLogger{}).Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		fields []string
	}{
		{"missing fields", func(r *Request) { r.Name, r.SportType, r.Price = "", " ", nil }, []string{"name", "sport_type", "price"}},
		{"negative price", func(r *Request) { r.Price = ptr.Ptr(decimal.NewFromInt(-1)) }, []string{"price"}},
		{"sub-cent price", func(r *Request) { r.Price = ptr.Ptr(decimal.RequireFromString("0.005")) }, []string{"price"}},
		{"price overflow", func(r *Request) { r.Price = ptr.Ptr(decimal.RequireFromString("10000000000")) }, []string{"price"}},
		{"district too long", func(r *Request) { r.District = strings.Repeat("d", domain.MaxStadiumDistrictLength+1) }, []string{"district"}},
		{"negative capacity", func(r *Request) { r.Capacity = -1 }, []string{"capacity"}},
		{"bad owner", func(r *Request) { r.OwnerID = ptr.Ptr(int64(0)) }, []string{"owner_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stadiums := &stadiumRepoMock{}
			req := validRequest()
			tt.modify(req)

			_, err := NewUseCase(stadiums, &userRepoMock{}, nil, passTx{}, nopLogger{}).Execute(context.Background(), req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.fields, vErr.Fields)
			stadiums.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ZeroPriceAllowed(t *testing.T) {
	stadiums := &stadiumRepoMock{}
	stadiums.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, s *domain.Stadium) *domain.Stadium { return inserted(s) }, nil)

	req := validRequest()
	req.OwnerID = nil
	req.Price = ptr.Ptr(decimal.Zero)

	_, err := NewUseCase(stadiums, &userRepoMock{}, nil, passTx{}, nopLogger{}).Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		ownerErr  error
		createErr error
		want      error
	}{
		{name: "owner missing", ownerErr: userRepo.ErrUserNotFound, want: ErrOwnerNotFound},
		{name: "owner lookup failed", ownerErr: errors.New("conn reset"), want: ErrInternal},
		{name: "owner deleted concurrently", createErr: fmt.Errorf("%w: Create", stadiumRepo.ErrOwnerReference), want: ErrOwnerNotFound},
		{name: "storage limits", createErr: fmt.Errorf("%w: Create: numeric field overflow", stadiumRepo.ErrInvalidValue), want: ErrInvalidInput},
		{name: "storage failure", createErr: fmt.Errorf("%w: Create: conn reset", stadiumRepo.ErrExecQuery), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stadiums := &stadiumRepoMock{}
			users := &userRepoMock{}
			cache := &cacheMock{}

			if tt.ownerErr != nil {
				users.On("GetByID", mock.Anything, int64(5)).Return(nil, tt.ownerErr)
			} else {
				users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
				stadiums.On("Create", mock.Anything, mock.Anything).Return(nil, tt.createErr)
			}

			_, err := NewUseCase(stadiums, users, cache, passTx{}, nopLogger{}).Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.want)
			cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
		})
	}
}
