package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

// authConfig carries the access-gate settings shared by the login handler
// and the admin-route middleware.
type authConfig struct {
	jwtSecret         string
	adminPasswordHash string
	tokenDuration     time.Duration
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, images services.ImageStore, notifier *services.ContactNotifier, auth authConfig, startupTime time.Time) *routeHandlers {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &routeHandlers{
		systemHandler:       newSystemHandler(startupTime),
		authHandler:         newAuthHandler(auth),
		projectHandler:      newProjectHandler(db.ProjectRepo(), images),
		experienceHandler:   newExperienceHandler(db.ExperienceRepo(), validate),
		announcementHandler: newAnnouncementHandler(db.AnnouncementRepo(), validate),
		heroHandler:         newHeroHandler(db.HeroRepo(), images),
		messageHandler:      newMessageHandler(db.MessageRepo(), validate),
		contactHandler:      newContactHandler(db.MessageRepo(), notifier, validate),
	}
}
