package slots

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/contracts"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/requests"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"beauty-clinic-service/internal/pkg/exceptions"
	"beauty-clinic-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository           contracts.SlotRepository
	AppointmentRecordsClient contracts.AppointmentRecordsClient
	SlotConfig               config.AppSlot
	Log                      *zap.Logger
	Now                      func() time.Time
}

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	appointmentRecordsClient contracts.AppointmentRecordsClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SlotUsecase {
	return &slotUsecase{
		SlotRepository:           slotRepository,
		AppointmentRecordsClient: appointmentRecordsClient,
		SlotConfig:               internalConfig.Slot,
		Log:                      logger,
		Now:                      time.Now,
	}
}

func (uc *slotUsecase) ListWindow(ctx context.Context) ([]responses.SlotRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	windowDays := uc.SlotConfig.WindowDays
	if windowDays <= 0 {
		windowDays = constvars.DefaultSlotWindowDays
	}
	dates := utils.CalendarWindow(uc.Now(), windowDays)

	uc.Log.Info("slotUsecase.ListWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingDatesKey, dates),
	)

	existing, err := uc.SlotRepository.FindByDates(ctx, dates)
	if err != nil {
		uc.Log.Error("slotUsecase.ListWindow error fetching slot records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.SlotRecord, 0, len(dates))
	for _, date := range dates {
		if record, ok := existing[date]; ok {
			result = append(result, record.ConvertIntoResponse())
			continue
		}

		record, err := uc.SlotRepository.FindOrCreateDefault(ctx, date)
		if err != nil {
			uc.Log.Error("slotUsecase.ListWindow error creating default slot record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, date),
				zap.Error(err),
			)
			return nil, err
		}
		result = append(result, record.ConvertIntoResponse())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	uc.Log.Info("slotUsecase.ListWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotRecordCountKey, len(result)),
	)
	return result, nil
}

func (uc *slotUsecase) UpdateWindow(ctx context.Context, entries []json.RawMessage) (*responses.UpdateSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.UpdateWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("entry_count", len(entries)),
	)

	response := &responses.UpdateSlots{
		Message: constvars.UpdateSlotsSuccessMessage,
	}

	for index, rawEntry := range entries {
		date, closedSlots, err := parseSlotEntry(rawEntry)
		if err != nil {
			uc.Log.Warn("slotUsecase.UpdateWindow skipping malformed entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("entry_index", index),
				zap.Error(err),
			)
			response.Skipped = append(response.Skipped, index)
			continue
		}

		_, err = uc.SlotRepository.Upsert(ctx, date, closedSlots)
		if err != nil {
			uc.Log.Error("slotUsecase.UpdateWindow error upserting slot record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, date),
				zap.Error(err),
			)
			return nil, err
		}
		response.Updated++
	}

	uc.Log.Info("slotUsecase.UpdateWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpdatedEntriesKey, response.Updated),
		zap.Ints(constvars.LoggingSkippedEntriesKey, response.Skipped),
	)
	return response, nil
}

func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if date == "" {
		return nil, exceptions.ErrMissingQueryParam(nil, constvars.URLQueryParamDate, constvars.ErrClientDateRequired)
	}
	if !utils.IsValidDate(date) {
		return nil, exceptions.ErrInputValidation(utils.ValidateStruct(requests.AvailableSlots{Date: date}))
	}

	appointments, err := uc.AppointmentRecordsClient.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("slotUsecase.GetAvailableSlots error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	booked := BookedTimes(appointments, date, uc.SlotConfig.ExcludeStatuses)

	var closed []string
	record, err := uc.SlotRepository.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("slotUsecase.GetAvailableSlots error fetching slot record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record != nil {
		closed = record.ClosedSlots
	}

	template := uc.SlotConfig.Template
	if len(template) == 0 {
		template = constvars.DefaultSlotTemplate
	}
	available := ComputeAvailableSlots(template, booked, closed)

	uc.Log.Info("slotUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingBookedSlotCountKey, len(booked)),
		zap.Int(constvars.LoggingClosedSlotCountKey, len(closed)),
		zap.Int(constvars.LoggingAvailableCountKey, len(available)),
	)
	return &responses.AvailableSlots{AvailableSlots: available}, nil
}

var (
	errSlotEntryNotObject       = errors.New("entry is not an object")
	errSlotEntryClosedSlotsType = errors.New("closedSlots must be a list of strings")
)

// parseSlotEntry accepts an entry only when it is an object with a well formed
// date and a closedSlots list of strings.
func parseSlotEntry(raw json.RawMessage) (string, []string, error) {
	var entry requests.SlotEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return "", nil, errSlotEntryNotObject
	}
	if err := utils.ValidateStruct(entry); err != nil {
		return "", nil, err
	}

	trimmed := bytes.TrimSpace(entry.ClosedSlots)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return "", nil, errSlotEntryClosedSlotsType
	}

	var closedSlots []string
	if err := json.Unmarshal(trimmed, &closedSlots); err != nil {
		return "", nil, errSlotEntryClosedSlotsType
	}
	return entry.Date, dedupeLabels(closedSlots), nil
}
