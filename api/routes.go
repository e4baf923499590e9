package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the access-gated admin
// endpoints. Every mutating route sits behind the gate; the API never trusts
// that only the admin UI reaches it.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.systemHandler.health())

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/announcements", handlers.announcementHandler.getActiveAnnouncement())
		r.Get("/hero", handlers.heroHandler.getHero())
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/experiences", handlers.experienceHandler.createExperience())
			r.Put("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
			r.Delete("/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

			r.Post("/announcements", handlers.announcementHandler.createAnnouncement())
			r.Put("/announcements", handlers.announcementHandler.updateAnnouncement())
			r.Delete("/announcements", handlers.announcementHandler.deleteAnnouncement())

			r.Post("/hero", handlers.heroHandler.upsertHero())

			r.Get("/messages", handlers.messageHandler.getAllMessages())
			r.Post("/messages", handlers.messageHandler.createMessage())
			r.Put("/messages", handlers.messageHandler.setMessageRead())
		})
	})
}
