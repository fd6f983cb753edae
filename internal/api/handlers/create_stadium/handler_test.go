package create_stadium

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StadiumRental/internal/api/middleware"
	createStadium "github.com/m04kA/SMC-StadiumRental/internal/usecase/create_stadium"
	"github.com/m04kA/SMC-StadiumRental/pkg/ptr"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *createStadium.Request) (*createStadium.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createStadium.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"name": "Central",
	"location": "Main st. 1",
	"district": "North",
	"price": 45.5,
	"capacity": 22,
	"sport_type": "football"
}`

func doRequest(h *Handler, body string, ctx context.Context) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stadiums", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandler_Created(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createStadium.Request) bool {
		return r.Name == "Central" &&
			r.Price != nil && r.Price.Equal(decimal.RequireFromString("45.5")) &&
			r.OwnerID != nil && *r.OwnerID == 3
	})).Return(&createStadium.Response{
		ID:        11,
		OwnerID:   ptr.Ptr(int64(3)),
		Name:      "Central",
		Location:  "Main st. 1",
		District:  "North",
		Price:     decimal.RequireFromString("45.5"),
		Capacity:  22,
		SportType: "football",
		IsActive:  true,
		CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}, nil)

	rec := doRequest(NewHandler(uc, nopLogger{}), validBody, middleware.WithUserID(context.Background(), 3))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(11), body["id"])
	assert.Equal(t, "45.50", body["price"])
	assert.Equal(t, true, body["is_active"])
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{name: "broken json", body: `{`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "malformed price", body: strings.Replace(validBody, "45.5", `"cheap"`, 1),
			wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "validation", body: validBody, ucErr: &createStadium.ValidationError{Fields: []string{"name"}, Reason: "missing required fields: name"},
			wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "owner not found", body: validBody, ucErr: createStadium.ErrOwnerNotFound,
			wantStatus: http.StatusBadRequest, wantError: msgOwnerNotFound},
		{name: "internal", body: validBody, ucErr: errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(NewHandler(uc, nopLogger{}), tt.body, context.Background())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
