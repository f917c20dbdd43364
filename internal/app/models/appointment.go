package models

// Appointment mirrors a booking stub kept by the booking records service.
type Appointment struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"userId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
