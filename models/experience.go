package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience represents one work experience entry. Order determines the
// display sequence, ascending; gaps between order values are permitted.
type Experience struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Company          string             `json:"company" bson:"company" validate:"required"`
	Role             string             `json:"role" bson:"role" validate:"required"`
	Duration         string             `json:"duration" bson:"duration" validate:"required"`
	Location         string             `json:"location,omitempty" bson:"location,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Responsibilities []string           `json:"responsibilities" bson:"responsibilities"`
	Technologies     []string           `json:"technologies" bson:"technologies"`
	Current          bool               `json:"current" bson:"current"`
	Order            int                `json:"order" bson:"order"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
