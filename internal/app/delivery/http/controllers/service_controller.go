package controllers

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"beauty-clinic-service/internal/pkg/exceptions"
	"beauty-clinic-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ServiceController struct {
	Log                   *zap.Logger
	ServiceCatalogUsecase contracts.ServiceCatalogUsecase
	RequestTimeout        time.Duration
}

func NewServiceController(logger *zap.Logger, serviceCatalogUsecase contracts.ServiceCatalogUsecase, internalConfig *config.InternalConfig) *ServiceController {
	return &ServiceController{
		Log:                   logger,
		ServiceCatalogUsecase: serviceCatalogUsecase,
		RequestTimeout:        requestTimeout(internalConfig),
	}
}

func (ctrl *ServiceController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ServiceController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ServiceController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ServiceCatalogUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("ServiceController.FindAll ServiceCatalogUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ServiceController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServiceCountKey, len(response)))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *ServiceController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ServiceController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if serviceID == "" {
		ctrl.Log.Error("ServiceController.FindByID missing service id",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamServiceID))
		return
	}

	ctrl.Log.Info("ServiceController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ServiceCatalogUsecase.FindByID(ctx, serviceID)
	if err != nil {
		ctrl.Log.Error("ServiceController.FindByID ServiceCatalogUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ServiceController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *ServiceController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ServiceController.Create requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ServiceController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, utils.GetUserID(r.Context())))

	request := new(requests.CreateService)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Create failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Create validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ServiceCatalogUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Create ServiceCatalogUsecase.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ServiceController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateServiceSuccessMessage, response)
}

func (ctrl *ServiceController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ServiceController.Update requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if serviceID == "" {
		ctrl.Log.Error("ServiceController.Update missing service id",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamServiceID))
		return
	}

	ctrl.Log.Info("ServiceController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))

	request := new(requests.UpdateService)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Update failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Update validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.ServiceCatalogUsecase.Update(ctx, serviceID, request)
	if err != nil {
		ctrl.Log.Error("ServiceController.Update ServiceCatalogUsecase.Update error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ServiceController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateServiceSuccessMessage, response)
}

func (ctrl *ServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ServiceController.Delete requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if serviceID == "" {
		ctrl.Log.Error("ServiceController.Delete missing service id",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamServiceID))
		return
	}

	ctrl.Log.Info("ServiceController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.ServiceCatalogUsecase.Delete(ctx, serviceID)
	if err != nil {
		ctrl.Log.Error("ServiceController.Delete ServiceCatalogUsecase.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ServiceController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteServiceSuccessMessage, nil)
}
