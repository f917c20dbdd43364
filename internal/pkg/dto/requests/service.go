package requests

type CreateService struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration,omitempty" validate:"gte=0"`
	Category        string  `json:"category,omitempty"`
	Image           string  `json:"image,omitempty"`
}

type UpdateService struct {
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes *int     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Category        string   `json:"category,omitempty"`
	Image           string   `json:"image,omitempty"`
}
