package slots

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/models"
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSlotRepository) FindByDate(ctx context.Context, date string) (*models.SlotRecord, error) {
	args := m.Called(ctx, date)
	record, _ := args.Get(0).(*models.SlotRecord)
	return record, args.Error(1)
}

func (m *MockSlotRepository) FindByDates(ctx context.Context, dates []string) (map[string]models.SlotRecord, error) {
	args := m.Called(ctx, dates)
	records, _ := args.Get(0).(map[string]models.SlotRecord)
	return records, args.Error(1)
}

func (m *MockSlotRepository) Upsert(ctx context.Context, date string, closedSlots []string) (*models.SlotRecord, error) {
	args := m.Called(ctx, date, closedSlots)
	record, _ := args.Get(0).(*models.SlotRecord)
	return record, args.Error(1)
}

func (m *MockSlotRepository) FindOrCreateDefault(ctx context.Context, date string) (*models.SlotRecord, error) {
	args := m.Called(ctx, date)
	record, _ := args.Get(0).(*models.SlotRecord)
	return record, args.Error(1)
}

type MockAppointmentRecordsClient struct {
	mock.Mock
}

func (m *MockAppointmentRecordsClient) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRecordsClient) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRecordsClient) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRecordsClient) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRecordsClient) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	created, _ := args.Get(0).(*models.Appointment)
	return created, args.Error(1)
}

func (m *MockAppointmentRecordsClient) Update(ctx context.Context, appointmentID string, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, appointment)
	updated, _ := args.Get(0).(*models.Appointment)
	return updated, args.Error(1)
}

func (m *MockAppointmentRecordsClient) Delete(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func newTestSlotUsecase(repo *MockSlotRepository, client *MockAppointmentRecordsClient, slotConfig config.AppSlot) *slotUsecase {
	uc := NewSlotUsecase(repo, client, &config.InternalConfig{Slot: slotConfig}, zap.NewNop()).(*slotUsecase)
	uc.Now = func() time.Time {
		return time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	}
	return uc
}

func defaultSlotConfig() config.AppSlot {
	return config.AppSlot{
		Template:   constvars.DefaultSlotTemplate,
		WindowDays: 3,
	}
}

func TestSlotUsecase_ListWindow(t *testing.T) {
	window := []string{"2025-07-10", "2025-07-11", "2025-07-12"}

	t.Run("Creates Missing Dates And Returns Sorted Window", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		repo.On("FindByDates", mock.Anything, window).Return(map[string]models.SlotRecord{
			"2025-07-11": {Date: "2025-07-11", ClosedSlots: []string{"10:00"}},
		}, nil)
		repo.On("FindOrCreateDefault", mock.Anything, "2025-07-10").Return(&models.SlotRecord{Date: "2025-07-10"}, nil)
		repo.On("FindOrCreateDefault", mock.Anything, "2025-07-12").Return(&models.SlotRecord{Date: "2025-07-12", ClosedSlots: []string{}}, nil)

		result, err := uc.ListWindow(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "2025-07-10", result[0].Date)
		assert.Equal(t, []string{}, result[0].ClosedSlots)
		assert.Equal(t, []string{"10:00"}, result[1].ClosedSlots)
		assert.Equal(t, "2025-07-12", result[2].Date)
		repo.AssertNotCalled(t, "FindOrCreateDefault", mock.Anything, "2025-07-11")
		repo.AssertExpectations(t)
	})

	t.Run("Existing Window Is Not Rewritten", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		repo.On("FindByDates", mock.Anything, window).Return(map[string]models.SlotRecord{
			"2025-07-10": {Date: "2025-07-10", ClosedSlots: []string{}},
			"2025-07-11": {Date: "2025-07-11", ClosedSlots: []string{}},
			"2025-07-12": {Date: "2025-07-12", ClosedSlots: []string{"09:00"}},
		}, nil)

		result, err := uc.ListWindow(context.Background())

		require.NoError(t, err)
		assert.Len(t, result, 3)
		repo.AssertNotCalled(t, "FindOrCreateDefault", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store Failure Is Returned", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		repo.On("FindByDates", mock.Anything, window).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("connection reset")))

		_, err := uc.ListWindow(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
	})
}

func TestSlotUsecase_UpdateWindow(t *testing.T) {
	t.Run("Malformed Entries Are Skipped", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		body := `[
			{"date": "2025-07-10", "closedSlots": ["10:00", "11:00", "10:00"]},
			{"closedSlots": ["09:00"]},
			{"date": "2025-07-11", "closedSlots": "10:00"},
			{"date": "2025-07-11"},
			{"date": "2025-07-11", "closedSlots": null},
			{"date": "07/12/2025", "closedSlots": []},
			42,
			{"date": "2025-07-12", "closedSlots": [1, 2]},
			{"date": "2025-07-12", "closedSlots": []}
		]`
		var entries []json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(body), &entries))

		repo.On("Upsert", mock.Anything, "2025-07-10", []string{"10:00", "11:00"}).Return(&models.SlotRecord{Date: "2025-07-10"}, nil).Once()
		repo.On("Upsert", mock.Anything, "2025-07-12", []string{}).Return(&models.SlotRecord{Date: "2025-07-12"}, nil).Once()

		result, err := uc.UpdateWindow(context.Background(), entries)

		require.NoError(t, err)
		assert.Equal(t, constvars.UpdateSlotsSuccessMessage, result.Message)
		assert.Equal(t, 2, result.Updated)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, result.Skipped)
		repo.AssertExpectations(t)
	})

	t.Run("Free Form Labels Are Accepted", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		entries := []json.RawMessage{json.RawMessage(`{"date":"2025-07-10","closedSlots":["lunch break"]}`)}
		repo.On("Upsert", mock.Anything, "2025-07-10", []string{"lunch break"}).Return(&models.SlotRecord{Date: "2025-07-10"}, nil)

		result, err := uc.UpdateWindow(context.Background(), entries)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Updated)
		assert.Empty(t, result.Skipped)
	})

	t.Run("Empty Batch", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		result, err := uc.UpdateWindow(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Updated)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store Failure Stops The Batch", func(t *testing.T) {
		repo := new(MockSlotRepository)
		uc := newTestSlotUsecase(repo, new(MockAppointmentRecordsClient), defaultSlotConfig())

		entries := []json.RawMessage{
			json.RawMessage(`{"date":"2025-07-10","closedSlots":[]}`),
			json.RawMessage(`{"date":"2025-07-11","closedSlots":[]}`),
		}
		repo.On("Upsert", mock.Anything, "2025-07-10", []string{}).Return(nil, exceptions.ErrMongoDBUpdateDocument(errors.New("not primary")))

		_, err := uc.UpdateWindow(context.Background(), entries)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, "2025-07-11", mock.Anything)
	})
}

func TestSlotUsecase_GetAvailableSlots(t *testing.T) {
	t.Run("Missing Date Fails Before Any Outbound Call", func(t *testing.T) {
		repo := new(MockSlotRepository)
		client := new(MockAppointmentRecordsClient)
		uc := newTestSlotUsecase(repo, client, defaultSlotConfig())

		_, err := uc.GetAvailableSlots(context.Background(), "")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDateRequired, customErr.ClientMessage)
		client.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
	})

	t.Run("Malformed Date Is Rejected", func(t *testing.T) {
		client := new(MockAppointmentRecordsClient)
		uc := newTestSlotUsecase(new(MockSlotRepository), client, defaultSlotConfig())

		_, err := uc.GetAvailableSlots(context.Background(), "10-07-2025")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
		client.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
	})

	t.Run("Subtracts Booked And Closed", func(t *testing.T) {
		repo := new(MockSlotRepository)
		client := new(MockAppointmentRecordsClient)
		uc := newTestSlotUsecase(repo, client, defaultSlotConfig())

		client.On("FindByDate", mock.Anything, "2025-07-10").Return([]models.Appointment{
			{Date: "2025-07-10", Time: "10:00"},
			{Date: "2025-07-10", Time: "13:00", Status: "cancelled"},
		}, nil)
		repo.On("FindByDate", mock.Anything, "2025-07-10").Return(&models.SlotRecord{Date: "2025-07-10", ClosedSlots: []string{"09:00", "18:00"}}, nil)

		result, err := uc.GetAvailableSlots(context.Background(), "2025-07-10")

		require.NoError(t, err)
		assert.Equal(t, []string{"11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}, result.AvailableSlots)
	})

	t.Run("Excluded Status Keeps Slot Available", func(t *testing.T) {
		repo := new(MockSlotRepository)
		client := new(MockAppointmentRecordsClient)
		slotConfig := defaultSlotConfig()
		slotConfig.ExcludeStatuses = []string{"cancelled"}
		uc := newTestSlotUsecase(repo, client, slotConfig)

		client.On("FindByDate", mock.Anything, "2025-07-10").Return([]models.Appointment{
			{Date: "2025-07-10", Time: "13:00", Status: "cancelled"},
		}, nil)
		repo.On("FindByDate", mock.Anything, "2025-07-10").Return(nil, nil)

		result, err := uc.GetAvailableSlots(context.Background(), "2025-07-10")

		require.NoError(t, err)
		assert.Equal(t, constvars.DefaultSlotTemplate, result.AvailableSlots)
	})

	t.Run("Booking Records Failure Fails The Operation", func(t *testing.T) {
		repo := new(MockSlotRepository)
		client := new(MockAppointmentRecordsClient)
		uc := newTestSlotUsecase(repo, client, defaultSlotConfig())

		client.On("FindByDate", mock.Anything, "2025-07-10").Return(nil, exceptions.ErrBookingRecordsUnavailable(errors.New("timeout"), constvars.ResourceAppointments))

		_, err := uc.GetAvailableSlots(context.Background(), "2025-07-10")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 503, customErr.StatusCode)
		repo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
	})
}
