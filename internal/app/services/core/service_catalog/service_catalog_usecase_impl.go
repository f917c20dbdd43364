package serviceCatalog

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type serviceCatalogUsecase struct {
	ServiceRecordsClient contracts.ServiceRecordsClient
	RedisRepository      contracts.RedisRepository
	CacheTTL             time.Duration
	Log                  *zap.Logger
}

func NewServiceCatalogUsecase(
	serviceRecordsClient contracts.ServiceRecordsClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ServiceCatalogUsecase {
	return &serviceCatalogUsecase{
		ServiceRecordsClient: serviceRecordsClient,
		RedisRepository:      redisRepository,
		CacheTTL:             time.Duration(internalConfig.Cache.ServiceCatalogTTLInSeconds) * time.Second,
		Log:                  logger,
	}
}

// FindAll serves the catalog from Redis when possible. Cache failures are
// logged and fall through to the booking records service.
func (uc *serviceCatalogUsecase) FindAll(ctx context.Context) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceCatalogUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyServiceCatalog)
	if err != nil {
		uc.Log.Warn("serviceCatalogUsecase.FindAll cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.RedisKeyServiceCatalog),
			zap.Error(err),
		)
	}

	if cached != "" {
		var services []models.Service
		err = json.Unmarshal([]byte(cached), &services)
		if err == nil {
			uc.Log.Info("serviceCatalogUsecase.FindAll served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingServiceCountKey, len(services)),
			)
			return services, nil
		}
		uc.Log.Warn("serviceCatalogUsecase.FindAll discarding unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	services, err := uc.ServiceRecordsClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.CacheTTL > 0 {
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyServiceCatalog, services, uc.CacheTTL)
		if err != nil {
			uc.Log.Warn("serviceCatalogUsecase.FindAll cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return services, nil
}

func (uc *serviceCatalogUsecase) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	return uc.ServiceRecordsClient.FindByID(ctx, serviceID)
}

func (uc *serviceCatalogUsecase) Create(ctx context.Context, request *requests.CreateService) (*models.Service, error) {
	service := &models.Service{
		Name:            request.Name,
		Description:     request.Description,
		Price:           request.Price,
		DurationMinutes: request.DurationMinutes,
		Category:        request.Category,
		Image:           request.Image,
	}

	created, err := uc.ServiceRecordsClient.Create(ctx, service)
	if err != nil {
		return nil, err
	}
	uc.invalidateCatalog(ctx)
	return created, nil
}

func (uc *serviceCatalogUsecase) Update(ctx context.Context, serviceID string, request *requests.UpdateService) (*models.Service, error) {
	existing, err := uc.ServiceRecordsClient.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		existing.Name = request.Name
	}
	if request.Description != "" {
		existing.Description = request.Description
	}
	if request.Price != nil {
		existing.Price = *request.Price
	}
	if request.DurationMinutes != nil {
		existing.DurationMinutes = *request.DurationMinutes
	}
	if request.Category != "" {
		existing.Category = request.Category
	}
	if request.Image != "" {
		existing.Image = request.Image
	}

	updated, err := uc.ServiceRecordsClient.Update(ctx, serviceID, existing)
	if err != nil {
		return nil, err
	}
	uc.invalidateCatalog(ctx)
	return updated, nil
}

func (uc *serviceCatalogUsecase) Delete(ctx context.Context, serviceID string) error {
	err := uc.ServiceRecordsClient.Delete(ctx, serviceID)
	if err != nil {
		return err
	}
	uc.invalidateCatalog(ctx)
	return nil
}

func (uc *serviceCatalogUsecase) invalidateCatalog(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyServiceCatalog)
	if err != nil {
		uc.Log.Warn("serviceCatalogUsecase.invalidateCatalog cache delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.RedisKeyServiceCatalog),
			zap.Error(err),
		)
	}
}
