package appointments

import (
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"context"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRecordsClient contracts.AppointmentRecordsClient
	Log                      *zap.Logger
}

func NewAppointmentUsecase(appointmentRecordsClient contracts.AppointmentRecordsClient, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRecordsClient: appointmentRecordsClient,
		Log:                      logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRecordsClient.FindAll(ctx)
}

func (uc *appointmentUsecase) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	return uc.AppointmentRecordsClient.FindByUserID(ctx, userID)
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	status := request.Status
	if status == "" {
		status = constvars.AppointmentStatusPending
	}

	appointment := &models.Appointment{
		UserID:    request.UserID,
		ServiceID: request.ServiceID,
		Date:      request.Date,
		Time:      request.Time,
		Status:    status,
		Notes:     request.Notes,
	}

	created, err := uc.AppointmentRecordsClient.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return created, nil
}

// Update merges the provided fields onto the stored appointment before writing it back.
func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	existing, err := uc.AppointmentRecordsClient.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if request.ServiceID != "" {
		existing.ServiceID = request.ServiceID
	}
	if request.Date != "" {
		existing.Date = request.Date
	}
	if request.Time != "" {
		existing.Time = request.Time
	}
	if request.Status != "" {
		existing.Status = request.Status
	}
	if request.Notes != "" {
		existing.Notes = request.Notes
	}

	updated, err := uc.AppointmentRecordsClient.Update(ctx, appointmentID, existing)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID string) error {
	return uc.AppointmentRecordsClient.Delete(ctx, appointmentID)
}
