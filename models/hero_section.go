package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultHeroImage is served when no hero record exists yet so the public
// site always has something to render.
const DefaultHeroImage = "/placeholder.svg"

// HeroSection is a logical singleton: the hero block of the public landing
// page. POST upserts the single record, updating only the supplied fields.
type HeroSection struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Image       string             `json:"image" bson:"image"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}
