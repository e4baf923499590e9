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

type projectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) ProjectRepo {
	return &projectRepo{coll: db.Collection("projects")}
}

// FindAll returns all projects, newest first by creation time
func (r *projectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var projects []*models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no record matches
func (r *projectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project, assigning an ID when the caller left it unset
func (r *projectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

// Update replaces an existing project document in place
func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	return err
}

// Delete removes a project document by id
func (r *projectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
