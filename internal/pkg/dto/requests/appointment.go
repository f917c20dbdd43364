package requests

type CreateAppointment struct {
	UserID    string `json:"userId" validate:"required"`
	ServiceID string `json:"serviceId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,hhmm"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateAppointment struct {
	ServiceID string `json:"serviceId,omitempty"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time      string `json:"time,omitempty" validate:"omitempty,hhmm"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
