package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingResponseLengthKey = "response_length"
	LoggingRequestKey        = "request"

	LoggingDateKey             = "date"
	LoggingDatesKey            = "dates"
	LoggingClosedSlotsKey      = "closed_slots"
	LoggingClosedSlotCountKey  = "closed_slot_count"
	LoggingBookedSlotCountKey  = "booked_slot_count"
	LoggingAvailableCountKey   = "available_slot_count"
	LoggingSlotRecordCountKey  = "slot_record_count"
	LoggingSkippedEntriesKey   = "skipped_entries"
	LoggingUpdatedEntriesKey   = "updated_entries"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingServiceIDKey        = "service_id"
	LoggingServiceCountKey     = "service_count"
	LoggingUserIDKey           = "user_id"
	LoggingUpstreamURLKey      = "upstream_url"
	LoggingUpstreamStatusKey   = "upstream_status"
	LoggingCacheKey            = "cache_key"
)
