package middlewares

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"beauty-clinic-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
				constvars.StatusTooManyRequests,
				constvars.ErrClientCannotProcessRequest,
				"rate limit exceeded",
			))
		}),
	)
}
