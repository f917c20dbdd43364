package responses

import "beauty-clinic-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	StatusCode int                  `json:"status_code"`
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	DevMessage string               `json:"dev_message,omitempty"`
	Location   *exceptions.Location `json:"location,omitempty"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
