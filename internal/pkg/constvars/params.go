package constvars

const (
	URLParamAppointmentID = "appointment_id"
	URLParamServiceID     = "service_id"
	URLParamUserID        = "user_id"
)

const (
	URLQueryParamDate = "date"
)
