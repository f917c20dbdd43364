package bookingRecords

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"context"
	"net/url"

	"go.uber.org/zap"
)

type appointmentRecordsClient struct {
	*recordsClient
}

func NewAppointmentRecordsClient(cfg config.AppBookingRecords, logger *zap.Logger) contracts.AppointmentRecordsClient {
	return &appointmentRecordsClient{
		recordsClient: newRecordsClient(cfg, logger),
	}
}

func (c *appointmentRecordsClient) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments := []models.Appointment{}
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodGet,
		Resource:        constvars.ResourceAppointments,
		EmptyOnNotFound: true,
	}, &appointments)
	if err != nil {
		return nil, err
	}

	c.Log.Info("appointmentRecordsClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentRecordsClient) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var appointment models.Appointment
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodGet,
		Resource:        constvars.ResourceAppointments,
		ID:              appointmentID,
		NotFoundMessage: constvars.ErrClientAppointmentNotFound,
	}, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindByDate asks the upstream to filter by date and then keeps exact matches
// only, since the upstream filter matches substrings.
func (c *appointmentRecordsClient) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.FindByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var candidates []models.Appointment
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodGet,
		Resource:        constvars.ResourceAppointments,
		Query:           url.Values{constvars.URLQueryParamDate: []string{date}},
		EmptyOnNotFound: true,
	}, &candidates)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(candidates))
	for _, appointment := range candidates {
		if appointment.Date == date {
			appointments = append(appointments, appointment)
		}
	}

	c.Log.Info("appointmentRecordsClient.FindByDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentRecordsClient) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	all, err := c.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0)
	for _, appointment := range all {
		if appointment.UserID == userID {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (c *appointmentRecordsClient) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, appointment.UserID),
		zap.String(constvars.LoggingDateKey, appointment.Date),
	)

	var created models.Appointment
	err := c.do(ctx, recordsRequest{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceAppointments,
		Body:     appointment,
	}, &created)
	if err != nil {
		return nil, err
	}

	c.Log.Info("appointmentRecordsClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return &created, nil
}

func (c *appointmentRecordsClient) Update(ctx context.Context, appointmentID string, appointment *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var updated models.Appointment
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodPut,
		Resource:        constvars.ResourceAppointments,
		ID:              appointmentID,
		Body:            appointment,
		NotFoundMessage: constvars.ErrClientAppointmentNotFound,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *appointmentRecordsClient) Delete(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRecordsClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return c.do(ctx, recordsRequest{
		Method:          constvars.MethodDelete,
		Resource:        constvars.ResourceAppointments,
		ID:              appointmentID,
		NotFoundMessage: constvars.ErrClientAppointmentNotFound,
	}, nil)
}
