package models

type Service struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration,omitempty"`
	Category        string  `json:"category,omitempty"`
	Image           string  `json:"image,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}
