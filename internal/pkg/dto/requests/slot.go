package requests

import "github.com/goccy/go-json"

// SlotEntry is one element of the PUT /slots batch. ClosedSlots stays raw so
// a missing or non-list value can be told apart from an empty list.
type SlotEntry struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	ClosedSlots json.RawMessage `json:"closedSlots"`
}

type AvailableSlots struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
