package controllers

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"beauty-clinic-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SlotController struct {
	Log            *zap.Logger
	SlotUsecase    contracts.SlotUsecase
	RequestTimeout time.Duration
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase, internalConfig *config.InternalConfig) *SlotController {
	return &SlotController{
		Log:            logger,
		SlotUsecase:    slotUsecase,
		RequestTimeout: requestTimeout(internalConfig),
	}
}

// FindWindow returns the closure records of the rolling admin window as a bare array.
func (ctrl *SlotController) FindWindow(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SlotController.FindWindow requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("SlotController.FindWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SlotUsecase.ListWindow(ctx)
	if err != nil {
		ctrl.Log.Error("SlotController.FindWindow SlotUsecase.ListWindow error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.FindWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *SlotController) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SlotController.UpdateWindow requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("SlotController.UpdateWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, utils.GetUserID(r.Context())))

	var entries []json.RawMessage
	err := json.NewDecoder(r.Body).Decode(&entries)
	if err != nil {
		ctrl.Log.Error("SlotController.UpdateWindow failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SlotUsecase.UpdateWindow(ctx, entries)
	if err != nil {
		ctrl.Log.Error("SlotController.UpdateWindow SlotUsecase.UpdateWindow error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.UpdateWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpdatedEntriesKey, response.Updated),
		zap.Ints(constvars.LoggingSkippedEntriesKey, response.Skipped))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *SlotController) FindAvailable(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SlotController.FindAvailable requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	ctrl.Log.Info("SlotController.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date))

	ctx, cancel := usecaseContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.SlotUsecase.GetAvailableSlots(ctx, date)
	if err != nil {
		ctrl.Log.Error("SlotController.FindAvailable SlotUsecase.GetAvailableSlots error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.FindAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAvailableCountKey, len(response.AvailableSlots)))
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
