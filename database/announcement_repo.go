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

type announcementRepo struct {
	coll *mongo.Collection
}

func NewAnnouncementRepo(db *mongo.Database) AnnouncementRepo {
	return &announcementRepo{coll: db.Collection("announcements")}
}

// FindActive returns the most recently created active announcement, or nil
// when no announcement is active
func (r *announcementRepo) FindActive(ctx context.Context) (*models.Announcement, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var announcement models.Announcement
	err := r.coll.FindOne(ctx, bson.M{"isActive": true}, opts).Decode(&announcement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeactivateAll clears the isActive flag on every announcement. Runs
// unconditionally before each insert so at most one record stays active.
func (r *announcementRepo) DeactivateAll(ctx context.Context) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"isActive": false}})
	return err
}

func (r *announcementRepo) Add(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID.IsZero() {
		announcement.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, announcement)
	return err
}

func (r *announcementRepo) Update(ctx context.Context, announcement *models.Announcement) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": announcement.ID}, announcement)
	return err
}

func (r *announcementRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
