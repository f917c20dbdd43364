package utils

import (
	"context"

	"beauty-clinic-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(constvars.CONTEXT_USER_ID_KEY).(string); ok {
		return userID
	}
	return ""
}

func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(constvars.CONTEXT_IS_ADMIN_KEY).(bool)
	return isAdmin
}
