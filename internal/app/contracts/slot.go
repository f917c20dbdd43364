package contracts

import (
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"context"

	"github.com/goccy/go-json"
)

type SlotRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindByDate(ctx context.Context, date string) (*models.SlotRecord, error)
	FindByDates(ctx context.Context, dates []string) (map[string]models.SlotRecord, error)
	Upsert(ctx context.Context, date string, closedSlots []string) (*models.SlotRecord, error)
	FindOrCreateDefault(ctx context.Context, date string) (*models.SlotRecord, error)
}

type SlotUsecase interface {
	ListWindow(ctx context.Context) ([]responses.SlotRecord, error)
	UpdateWindow(ctx context.Context, entries []json.RawMessage) (*responses.UpdateSlots, error)
	GetAvailableSlots(ctx context.Context, date string) (*responses.AvailableSlots, error)
}
