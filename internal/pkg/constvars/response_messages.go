package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckMessage = "Beauty Clinic API is running"
	HealthStatusOK     = "OK"

	// Slot messages
	UpdateSlotsSuccessMessage = "Slots updated successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "Appointment booked successfully"
	UpdateAppointmentSuccessMessage = "Appointment updated successfully"
	DeleteAppointmentSuccessMessage = "Appointment cancelled successfully"

	// Service catalog messages
	CreateServiceSuccessMessage = "Service created successfully"
	UpdateServiceSuccessMessage = "Service updated successfully"
	DeleteServiceSuccessMessage = "Service deleted successfully"
)
