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

type messageRepo struct {
	coll *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) MessageRepo {
	return &messageRepo{coll: db.Collection("messages")}
}

// FindAll returns all messages, newest first
func (r *messageRepo) FindAll(ctx context.Context) ([]*models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var messages []*models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) Add(ctx context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, message)
	return err
}

// SetRead toggles the read flag and returns the updated message, or nil
// when the id has no matching record
func (r *messageRepo) SetRead(ctx context.Context, id primitive.ObjectID, read bool) (*models.Message, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message models.Message
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": read}}, opts).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}
