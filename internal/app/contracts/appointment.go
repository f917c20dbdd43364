package contracts

import (
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"context"
)

type AppointmentRecordsClient interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID string, appointment *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}
