package middlewares

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/exceptions"
	"beauty-clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate requires a bearer token signed with the configured secret and
// stores the caller's id and admin flag in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token, err := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate missing bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		claims, err := utils.ParseAccessToken(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, claims.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_ADMIN_KEY, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsAdmin(r.Context()) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Warn("Middlewares.RequireAdmin denied access",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, utils.GetUserID(r.Context())),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
