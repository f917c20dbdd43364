package controllers

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"beauty-clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) ListWindow(ctx context.Context) ([]responses.SlotRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]responses.SlotRecord)
	return records, args.Error(1)
}

func (m *MockSlotUsecase) UpdateWindow(ctx context.Context, entries []json.RawMessage) (*responses.UpdateSlots, error) {
	args := m.Called(ctx, entries)
	result, _ := args.Get(0).(*responses.UpdateSlots)
	return result, args.Error(1)
}

func (m *MockSlotUsecase) GetAvailableSlots(ctx context.Context, date string) (*responses.AvailableSlots, error) {
	args := m.Called(ctx, date)
	result, _ := args.Get(0).(*responses.AvailableSlots)
	return result, args.Error(1)
}

func newRequest(method, target string, body io.Reader, urlParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "BCLNC_SVC_test")
	if len(urlParams) > 0 {
		routeCtx := chi.NewRouteContext()
		for key, value := range urlParams {
			routeCtx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestSlotController_FindWindow(t *testing.T) {
	t.Run("returns the window as a bare array", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("ListWindow", mock.Anything).Return([]responses.SlotRecord{
			{Date: "2025-07-10", ClosedSlots: []string{"09:00"}},
			{Date: "2025-07-11", ClosedSlots: []string{}},
			{Date: "2025-07-12", ClosedSlots: []string{}},
		}, nil)
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindWindow(rec, newRequest(http.MethodGet, "/api/slots", nil, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body []responses.SlotRecord
		decodeBody(t, rec, &body)
		require.Len(t, body, 3)
		assert.Equal(t, "2025-07-10", body[0].Date)
		assert.Equal(t, []string{"09:00"}, body[0].ClosedSlots)
		assert.Equal(t, []string{}, body[1].ClosedSlots)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("ListWindow", mock.Anything).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("boom")))
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindWindow(rec, newRequest(http.MethodGet, "/api/slots", nil, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing request id", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindWindow(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		usecase.AssertNotCalled(t, "ListWindow", mock.Anything)
	})
}

func TestSlotController_UpdateWindow(t *testing.T) {
	t.Run("forwards every raw entry", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("UpdateWindow", mock.Anything, mock.MatchedBy(func(entries []json.RawMessage) bool {
			return len(entries) == 2
		})).Return(&responses.UpdateSlots{
			Message: constvars.UpdateSlotsSuccessMessage,
			Updated: 1,
			Skipped: []int{1},
		}, nil)
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		payload := `[{"date":"2025-07-10","closedSlots":["09:00"]},{"date":"bad"}]`
		rec := httptest.NewRecorder()
		ctrl.UpdateWindow(rec, newRequest(http.MethodPut, "/api/slots", strings.NewReader(payload), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body responses.UpdateSlots
		decodeBody(t, rec, &body)
		assert.Equal(t, constvars.UpdateSlotsSuccessMessage, body.Message)
		assert.Equal(t, 1, body.Updated)
		assert.Equal(t, []int{1}, body.Skipped)
		usecase.AssertExpectations(t)
	})

	t.Run("non array body is rejected", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.UpdateWindow(rec, newRequest(http.MethodPut, "/api/slots", strings.NewReader(`{"date":"2025-07-10"}`), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "UpdateWindow", mock.Anything, mock.Anything)
	})
}

func TestSlotController_FindAvailable(t *testing.T) {
	t.Run("passes the date query through", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("GetAvailableSlots", mock.Anything, "2025-07-10").
			Return(&responses.AvailableSlots{AvailableSlots: []string{"11:00", "12:00"}}, nil)
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindAvailable(rec, newRequest(http.MethodGet, "/api/appointments/available-slots?date=2025-07-10", nil, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"availableSlots":["11:00","12:00"]}`, rec.Body.String())
	})

	t.Run("missing date is a bad request", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("GetAvailableSlots", mock.Anything, "").
			Return(nil, exceptions.ErrMissingQueryParam(nil, constvars.URLQueryParamDate, constvars.ErrClientDateRequired))
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindAvailable(rec, newRequest(http.MethodGet, "/api/appointments/available-slots", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body responses.ErrorResponseDTO
		decodeBody(t, rec, &body)
		assert.Equal(t, constvars.ErrClientDateRequired, body.Message)
	})

	t.Run("booking records outage", func(t *testing.T) {
		usecase := new(MockSlotUsecase)
		usecase.On("GetAvailableSlots", mock.Anything, "2025-07-10").
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))
		ctrl := NewSlotController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindAvailable(rec, newRequest(http.MethodGet, "/api/appointments/available-slots?date=2025-07-10", nil, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
