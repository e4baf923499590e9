package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBackgroundColor is applied when a project is created without an
// explicit card background.
const DefaultBackgroundColor = "#f5f5f5"

// MaxProjectImages caps the image list per project; the admin form enforces
// the same limit client-side.
const MaxProjectImages = 6

// ProjectImage is one entry in a project's ordered image list. At most one
// entry carries IsPrimary=true.
type ProjectImage struct {
	URL       string `json:"url" bson:"url"`
	IsPrimary bool   `json:"isPrimary" bson:"isPrimary"`
}

// Project represents a portfolio project with its remotely hosted images
type Project struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Images          []ProjectImage     `json:"images" bson:"images"`
	Github          string             `json:"github,omitempty" bson:"github,omitempty"`
	Playstore       string             `json:"playstore,omitempty" bson:"playstore,omitempty"`
	Tags            []string           `json:"tags" bson:"tags"`
	BackgroundColor string             `json:"backgroundColor" bson:"backgroundColor"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PrimaryImage returns the URL of the image marked primary, or the empty
// string when no image is marked. A missing primary is a renderable state;
// callers fall back to a placeholder.
func (p Project) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	return ""
}

// MarkPrimary returns the image list with IsPrimary derived from
// primaryIndex. An out-of-range index leaves every image unmarked.
func MarkPrimary(images []ProjectImage, primaryIndex int) []ProjectImage {
	for i := range images {
		images[i].IsPrimary = i == primaryIndex
	}
	return images
}
