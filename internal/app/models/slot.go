package models

import (
	"beauty-clinic-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotRecord holds the time labels an administrator closed for one calendar date.
type SlotRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Date        string             `bson:"date"`
	ClosedSlots []string           `bson:"closedSlots"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

func (s *SlotRecord) ConvertIntoResponse() responses.SlotRecord {
	closedSlots := s.ClosedSlots
	if closedSlots == nil {
		closedSlots = []string{}
	}
	return responses.SlotRecord{
		Date:        s.Date,
		ClosedSlots: closedSlots,
	}
}
