package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(deps Deps, authMiddleware authMiddleware, jwtSecret []byte, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(deps.DB.ProjectRepo()),
		reviewHandler:     newReviewHandler(deps.DB.ReviewRepo(), authMiddleware, deps.Mailer),
		resumeHandler:     newResumeHandler(deps.DB.ResumeRepo()),
		messageHandler:    newMessageHandler(deps.DB.MessageRepo(), deps.Mailer),
		socialLinkHandler: newSocialLinkHandler(deps.DB.SocialLinkRepo()),
		authHandler:       newAuthHandler(deps.DB.UserRepo(), jwtSecret),
		uploadHandler:     newUploadHandler(deps.ObjectStore),
		healthHandler:     newHealthHandler(startupTime),
	}
}
