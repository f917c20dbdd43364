package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"datetime": "must follow the format %s",
	"hhmm":     "must be a time label formatted as HH:MM",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of %s",
}

// Tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"datetime": true,
	"min":      true,
	"max":      true,
	"gte":      true,
	"oneof":    true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong!"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "No token, authorization denied"
	ErrClientTokenNotValid                 = "Token is not valid"
	ErrClientAdminOnly                     = "Access denied. Admin only."
	ErrClientRouteNotFound                 = "Route not found"
	ErrClientDateRequired                  = "Date is required"
	ErrClientMissingRequiredFields         = "Missing required fields"
	ErrClientServiceNotFound               = "Service not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientBookingRecordsUnavailable     = "booking records are temporarily unavailable"
	ErrClientFailedToGetAvailableSlots     = "Failed to get available slots"
	ErrClientFailedToLoadSlots             = "Server error"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevMissingRequestID      = "request id missing from context"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevValidationFailed      = "validation failed"
	ErrDevMissingQueryParam     = "missing required query parameter %s"
	ErrDevURLParamMissing       = "missing required url parameter %s"
	ErrDevServerProcess         = "server failed to process the request"
	ErrDevServerDeadlineExceed  = "deadline exceeded"
	ErrDevServerPanicRecovered  = "panic recovered while serving request"
	ErrDevRouteNotFound         = "no route matched the request"
	ErrDevMethodNotAllowed      = "method not allowed on this route"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissingSubject   = "token has no id claim"
	ErrDevAuthNotAdmin              = "authenticated user is not an admin"

	// Database messages
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents on database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Booking records messages
	ErrDevBookingRecordsUnavailable = "booking records service unavailable for resource %s"
	ErrDevBookingRecordsBadStatus   = "booking records service answered %d for resource %s"
	ErrDevBookingRecordsNotFound    = "booking records service has no %s with the given id"
	ErrDevDecodeResponse            = "failed to decode booking records response for resource %s"
)
