package bookingRecords

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type serviceRecordsClient struct {
	*recordsClient
}

func NewServiceRecordsClient(cfg config.AppBookingRecords, logger *zap.Logger) contracts.ServiceRecordsClient {
	return &serviceRecordsClient{
		recordsClient: newRecordsClient(cfg, logger),
	}
}

func (c *serviceRecordsClient) FindAll(ctx context.Context) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceRecordsClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services := []models.Service{}
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodGet,
		Resource:        constvars.ResourceServices,
		EmptyOnNotFound: true,
	}, &services)
	if err != nil {
		return nil, err
	}

	c.Log.Info("serviceRecordsClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServiceCountKey, len(services)),
	)
	return services, nil
}

func (c *serviceRecordsClient) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceRecordsClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	var service models.Service
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodGet,
		Resource:        constvars.ResourceServices,
		ID:              serviceID,
		NotFoundMessage: constvars.ErrClientServiceNotFound,
	}, &service)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *serviceRecordsClient) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceRecordsClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var created models.Service
	err := c.do(ctx, recordsRequest{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceServices,
		Body:     service,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *serviceRecordsClient) Update(ctx context.Context, serviceID string, service *models.Service) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceRecordsClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	var updated models.Service
	err := c.do(ctx, recordsRequest{
		Method:          constvars.MethodPut,
		Resource:        constvars.ResourceServices,
		ID:              serviceID,
		Body:            service,
		NotFoundMessage: constvars.ErrClientServiceNotFound,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *serviceRecordsClient) Delete(ctx context.Context, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceRecordsClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	return c.do(ctx, recordsRequest{
		Method:          constvars.MethodDelete,
		Resource:        constvars.ResourceServices,
		ID:              serviceID,
		NotFoundMessage: constvars.ErrClientServiceNotFound,
	}, nil)
}
