package utils

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"beauty-clinic-service/internal/pkg/exceptions"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error Keeps Status And Message", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrMissingQueryParam(nil, constvars.URLQueryParamDate, constvars.ErrClientDateRequired))

		assert.Equal(t, 400, rec.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))

		var body responses.ErrorResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Date is required", body.Message)
		assert.Empty(t, body.DevMessage)
		assert.Nil(t, body.Location)
	})

	t.Run("Development Exposes Dev Message", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrBookingRecordsUnavailable(errors.New("dial tcp: refused"), constvars.ResourceAppointments))

		assert.Equal(t, 503, rec.Code)
		var body responses.ErrorResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.DevMessage, "dial tcp: refused")
		require.NotNil(t, body.Location)
		assert.NotEmpty(t, body.Location.File)
	})

	t.Run("Plain Error Becomes Server Error", func(t *testing.T) {
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, 500, rec.Code)
		var body responses.ErrorResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Something went wrong!", body.Message)
	})
}

func TestBuildJSONResponseWritesRawArray(t *testing.T) {
	rec := httptest.NewRecorder()

	BuildJSONResponse(rec, 200, []responses.SlotRecord{{Date: "2025-07-10", ClosedSlots: []string{}}})

	assert.JSONEq(t, `[{"date":"2025-07-10","closedSlots":[]}]`, rec.Body.String())
}
