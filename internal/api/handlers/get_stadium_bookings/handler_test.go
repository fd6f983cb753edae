package get_stadium_bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings"
	"github.com/m04kA/SMC-StadiumRental/internal/service/bookings/models"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetStadiumBookings(ctx context.Context, req *models.GetStadiumBookingsRequest) ([]models.StadiumBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StadiumBookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/stadiums/{stadiumId}/bookings", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(3, "2024-06-01", "2024-06-30", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, int64(3), req.StadiumID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *req.StartDate)
	assert.Equal(t, "confirmed", *req.Status)

	req, err = ToServiceRequest(3, "", "", "")
	require.NoError(t, err)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.Status)

	_, err = ToServiceRequest(3, "June 1", "", "")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetStadiumBookings", mock.Anything, mock.MatchedBy(func(r *models.GetStadiumBookingsRequest) bool {
		return r.StadiumID == 1
	})).Return([]models.StadiumBookingResponse{}, nil)
	svc.On("GetStadiumBookings", mock.Anything, mock.MatchedBy(func(r *models.GetStadiumBookingsRequest) bool {
		return r.StadiumID == 2
	})).Return(nil, fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput))
	svc.On("GetStadiumBookings", mock.Anything, mock.MatchedBy(func(r *models.GetStadiumBookingsRequest) bool {
		return r.StadiumID == 3
	})).Return(nil, errors.New("boom"))

	rec := serve(svc, "/api/stadiums/1/bookings?startDate=2024-06-01")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/stadiums/2/bookings?status=archived").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(svc, "/api/stadiums/3/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/stadiums/x/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/stadiums/1/bookings?endDate=tomorrow").Code)
}
