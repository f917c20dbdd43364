package contracts

import (
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"context"
)

type ServiceRecordsClient interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (*models.Service, error)
	Update(ctx context.Context, serviceID string, service *models.Service) (*models.Service, error)
	Delete(ctx context.Context, serviceID string) error
}

type ServiceCatalogUsecase interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, request *requests.CreateService) (*models.Service, error)
	Update(ctx context.Context, serviceID string, request *requests.UpdateService) (*models.Service, error)
	Delete(ctx context.Context, serviceID string) error
}
