package database

import (
	"context"

	"github.com/wbenmachich/portfolio-site-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectRepo persists portfolio projects, newest first.
type ProjectRepo interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExperienceRepo persists work experience entries, sorted ascending by the
// caller-supplied display order.
type ExperienceRepo interface {
	FindAll(ctx context.Context) ([]*models.Experience, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	Add(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AnnouncementRepo persists announcements under the single-active-record
// invariant: DeactivateAll runs before every insert of an active record.
type AnnouncementRepo interface {
	FindActive(ctx context.Context) (*models.Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	DeactivateAll(ctx context.Context) error
	Add(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// HeroRepo persists the hero-section singleton. Upsert updates only the
// supplied fields, creating the record if none exists.
type HeroRepo interface {
	Find(ctx context.Context) (*models.HeroSection, error)
	Upsert(ctx context.Context, fields map[string]string) (*models.HeroSection, error)
}

// MessageRepo persists contact-form messages. Messages are never deleted;
// SetRead toggles the admin read flag.
type MessageRepo interface {
	FindAll(ctx context.Context) ([]*models.Message, error)
	Add(ctx context.Context, message *models.Message) error
	SetRead(ctx context.Context, id primitive.ObjectID, read bool) (*models.Message, error)
}

type Database struct {
	projectRepo      ProjectRepo
	experienceRepo   ExperienceRepo
	announcementRepo AnnouncementRepo
	heroRepo         HeroRepo
	messageRepo      MessageRepo
}

// New initializes a new Database struct with each repository using a shared
// MongoDB database handle
func New(db *mongo.Database) Database {
	return Database{
		projectRepo:      NewProjectRepo(db),
		experienceRepo:   NewExperienceRepo(db),
		announcementRepo: NewAnnouncementRepo(db),
		heroRepo:         NewHeroRepo(db),
		messageRepo:      NewMessageRepo(db),
	}
}

// NewWithRepos builds a Database from explicit repository implementations.
// Used by tests to inject mocks.
func NewWithRepos(projects ProjectRepo, experiences ExperienceRepo, announcements AnnouncementRepo, hero HeroRepo, messages MessageRepo) Database {
	return Database{
		projectRepo:      projects,
		experienceRepo:   experiences,
		announcementRepo: announcements,
		heroRepo:         hero,
		messageRepo:      messages,
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() ProjectRepo {
	return d.projectRepo
}

func (d Database) ExperienceRepo() ExperienceRepo {
	return d.experienceRepo
}

func (d Database) AnnouncementRepo() AnnouncementRepo {
	return d.announcementRepo
}

func (d Database) HeroRepo() HeroRepo {
	return d.heroRepo
}

func (d Database) MessageRepo() MessageRepo {
	return d.messageRepo
}
