package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	reviewHandler     reviewHandler
	resumeHandler     resumeHandler
	messageHandler    messageHandler
	socialLinkHandler socialLinkHandler
	authHandler       authHandler
	uploadHandler     uploadHandler
	healthHandler     healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error      string `json:"error" example:"Internal Server Error"`
	Status     string `json:"status" example:"error"`
	Field      string `json:"field,omitempty" example:"rating"`
	Details    string `json:"details,omitempty" example:"Additional error details"`
	Violations any    `json:"violations,omitempty"`
}
