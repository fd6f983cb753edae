package get_stadium

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums"
	"github.com/m04kA/SMC-StadiumRental/internal/service/stadiums/models"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetByID(ctx context.Context, id int64) (*models.StadiumResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StadiumResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetByID", mock.Anything, int64(1)).Return(&models.StadiumResponse{ID: 1, Name: "Central", Price: "45.00"}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, stadiums.ErrStadiumNotFound)
	svc.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("boom"))

	r := mux.NewRouter()
	r.HandleFunc("/api/stadiums/{stadiumId}", NewHandler(svc, nopLogger{}).Handle)

	for path, want := range map[string]int{
		"/api/stadiums/1":   http.StatusOK,
		"/api/stadiums/2":   http.StatusNotFound,
		"/api/stadiums/3":   http.StatusInternalServerError,
		"/api/stadiums/abc": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}
