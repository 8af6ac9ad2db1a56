package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the full route table under /api.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())
		r.Post("/auth/login", handlers.authHandler.login())

		// Public surface
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/reviews", handlers.reviewHandler.getReviews())
		r.Post("/reviews", handlers.reviewHandler.createReview())
		r.Post("/resumes", handlers.resumeHandler.createResume())
		r.Post("/messages", handlers.messageHandler.createMessage())
		r.Get("/social-links", handlers.socialLinkHandler.getSocialLinks())
		r.Post("/uploads/resume", handlers.uploadHandler.uploadResume())

		// Admin surface
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Patch("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Patch("/reviews/{reviewID}/approve", handlers.reviewHandler.approveReview())
			r.Delete("/reviews/{reviewID}", handlers.reviewHandler.deleteReview())

			r.Get("/resumes", handlers.resumeHandler.getAllResumes())
			r.Get("/messages", handlers.messageHandler.getAllMessages())

			r.Patch("/social-links", handlers.socialLinkHandler.updateSocialLinks())
		})
	})
}
