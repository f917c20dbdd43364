package responses

type SlotRecord struct {
	Date        string   `json:"date"`
	ClosedSlots []string `json:"closedSlots"`
}

type UpdateSlots struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
	Skipped []int  `json:"skipped,omitempty"`
}

type AvailableSlots struct {
	AvailableSlots []string `json:"availableSlots"`
}
