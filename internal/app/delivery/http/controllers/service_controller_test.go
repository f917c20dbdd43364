package controllers

import (
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"beauty-clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockServiceCatalogUsecase struct {
	mock.Mock
}

func (m *MockServiceCatalogUsecase) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *MockServiceCatalogUsecase) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *MockServiceCatalogUsecase) Create(ctx context.Context, request *requests.CreateService) (*models.Service, error) {
	args := m.Called(ctx, request)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *MockServiceCatalogUsecase) Update(ctx context.Context, serviceID string, request *requests.UpdateService) (*models.Service, error) {
	args := m.Called(ctx, serviceID, request)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *MockServiceCatalogUsecase) Delete(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

func TestServiceController_FindAll(t *testing.T) {
	usecase := new(MockServiceCatalogUsecase)
	usecase.On("FindAll", mock.Anything).Return([]models.Service{
		{ID: "1", Name: "Facial", Price: 50},
		{ID: "2", Name: "Manicure", Price: 25},
	}, nil)
	ctrl := NewServiceController(zap.NewNop(), usecase, nil)

	rec := httptest.NewRecorder()
	ctrl.FindAll(rec, newRequest(http.MethodGet, "/api/services", nil, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body []models.Service
	decodeBody(t, rec, &body)
	assert.Len(t, body, 2)
}

func TestServiceController_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		usecase := new(MockServiceCatalogUsecase)
		usecase.On("FindByID", mock.Anything, "1").Return(&models.Service{ID: "1", Name: "Facial"}, nil)
		ctrl := NewServiceController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newRequest(http.MethodGet, "/api/services/1", nil, map[string]string{constvars.URLParamServiceID: "1"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body models.Service
		decodeBody(t, rec, &body)
		assert.Equal(t, "Facial", body.Name)
	})

	t.Run("not found", func(t *testing.T) {
		usecase := new(MockServiceCatalogUsecase)
		usecase.On("FindByID", mock.Anything, "9").
			Return(nil, exceptions.ErrBookingRecordsNotFound(errors.New("404"), "services", constvars.ErrClientServiceNotFound))
		ctrl := NewServiceController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newRequest(http.MethodGet, "/api/services/9", nil, map[string]string{constvars.URLParamServiceID: "9"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body responses.ErrorResponseDTO
		decodeBody(t, rec, &body)
		assert.Equal(t, constvars.ErrClientServiceNotFound, body.Message)
	})
}

func TestServiceController_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		usecase := new(MockServiceCatalogUsecase)
		usecase.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreateService")).
			Return(&models.Service{ID: "3", Name: "Peel", Price: 80}, nil)
		ctrl := NewServiceController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/api/services", strings.NewReader(`{"name":"Peel","price":80}`), nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body responses.ResponseDTO
		decodeBody(t, rec, &body)
		assert.Equal(t, constvars.CreateServiceSuccessMessage, body.Message)
	})

	t.Run("negative price", func(t *testing.T) {
		usecase := new(MockServiceCatalogUsecase)
		ctrl := NewServiceController(zap.NewNop(), usecase, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/api/services", strings.NewReader(`{"name":"Peel","price":-1}`), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestServiceController_Delete(t *testing.T) {
	usecase := new(MockServiceCatalogUsecase)
	usecase.On("Delete", mock.Anything, "3").Return(nil)
	ctrl := NewServiceController(zap.NewNop(), usecase, nil)

	rec := httptest.NewRecorder()
	ctrl.Delete(rec, newRequest(http.MethodDelete, "/api/services/3", nil, map[string]string{constvars.URLParamServiceID: "3"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body responses.ResponseDTO
	decodeBody(t, rec, &body)
	assert.Equal(t, constvars.DeleteServiceSuccessMessage, body.Message)
	usecase.AssertExpectations(t)
}
