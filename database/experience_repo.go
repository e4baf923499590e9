package database

import (
	"context"
	"errors"

	"github.com/wbenmachich/portfolio-site-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type experienceRepo struct {
	coll *mongo.Collection
}

func NewExperienceRepo(db *mongo.Database) ExperienceRepo {
	return &experienceRepo{coll: db.Collection("experiences")}
}

// FindAll returns all experiences sorted by display order, ascending.
// Gaps between order values are permitted; no renumbering happens on delete.
func (r *experienceRepo) FindAll(ctx context.Context) ([]*models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var experiences []*models.Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	var experience models.Experience
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&experience)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepo) Add(ctx context.Context, experience *models.Experience) error {
	if experience.ID.IsZero() {
		experience.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, experience)
	return err
}

func (r *experienceRepo) Update(ctx context.Context, experience *models.Experience) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": experience.ID}, experience)
	return err
}

func (r *experienceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
