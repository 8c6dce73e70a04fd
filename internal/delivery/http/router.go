package http

import (
	"log/slog"
	"net/http"

	_ "eventregistration/docs"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(registrationController *controllers.RegistrationController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /events", registrationController.ListEvents)
	mux.HandleFunc("GET /events/{eventId}", registrationController.GetEvent)
	mux.HandleFunc("POST /events/{eventId}/register", registrationController.RegisterForEvent)
	mux.HandleFunc("GET /events/{eventId}/sessions", registrationController.ListSessionsForEvent)
	mux.HandleFunc("POST /events/{eventId}/sessions/{sessionId}/register", registrationController.RegisterForSession)

	mux.HandleFunc("GET /health", controllers.Health)

	// Swagger
	mux.Handle("/api-docs/", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	return mux
}

// NewHandler wraps the router with the middleware chain shared by every route.
func NewHandler(logger *slog.Logger, allowedOrigins []string, registrationController *controllers.RegistrationController) http.Handler {
	var h http.Handler = NewRouter(registrationController)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.Recovery(logger, h)
	h = middleware.RequestID(h)
	return h
}
