package controllers

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/dto/responses"
	"beauty-clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthController struct {
	Log *zap.Logger
}

func NewHealthController(logger *zap.Logger) *HealthController {
	return &HealthController{
		Log: logger,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.HealthCheck{
		Status:  constvars.HealthStatusOK,
		Message: constvars.HealthCheckMessage,
	})
}
