package database

import (
	"context"
	"errors"

	"github.com/wbenmachich/portfolio-site-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type heroRepo struct {
	coll *mongo.Collection
}

func NewHeroRepo(db *mongo.Database) HeroRepo {
	return &heroRepo{coll: db.Collection("herosections")}
}

// Find returns the hero-section singleton, or nil when it was never created
func (r *heroRepo) Find(ctx context.Context) (*models.HeroSection, error) {
	var hero models.HeroSection
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&hero)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// Upsert updates the singleton with only the supplied fields, creating the
// record when none exists, and returns the resulting document.
func (r *heroRepo) Upsert(ctx context.Context, fields map[string]string) (*models.HeroSection, error) {
	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var hero models.HeroSection
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{}, bson.M{"$set": set}, opts).Decode(&hero); err != nil {
		return nil, err
	}
	return &hero, nil
}
