package routes

import (
	"net/http"
	"time"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/app"
	"github.com/cheickthiam/portfolio/internal/handler"
	"github.com/cheickthiam/portfolio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	experience := handler.NewExperienceHandler(app.ExperienceService)
	project := handler.NewProjectHandler(app.ProjectService)
	certification := handler.NewCertificationHandler(app.CertificationService)
	contact := handler.NewContactHandler(app.ContactService)
	profile := handler.NewProfileHandler(app.ProfileService)

	admin := middleware.RequireAdmin(app.AuthService)
	loginLimit := middleware.RateLimit(5, 15*time.Minute)
	contactLimit := middleware.RateLimit(3, time.Hour)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// Auth
	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(auth.Login)))
	mux.HandleFunc("POST /api/auth/create-admin", auth.CreateAdmin)

	// Content
	mux.HandleFunc("GET /api/experiences", experience.List)
	mux.HandleFunc("GET /api/experiences/{id}", experience.Get)
	mux.HandleFunc("GET /api/projects", project.List)
	mux.HandleFunc("GET /api/projects/{id}", project.Get)
	mux.HandleFunc("GET /api/certifications", certification.List)
	mux.HandleFunc("GET /api/certifications/{id}", certification.Get)
	mux.HandleFunc("GET /api/certifications/{id}/download", certification.Download)
	mux.HandleFunc("GET /api/profile", profile.Get)

	// Contact form
	mux.Handle("POST /api/contact", contactLimit(http.HandlerFunc(contact.Submit)))

	// ============================================================================
	// PROTECTED ROUTES (bearer token)
	// ============================================================================

	// Account
	mux.HandleFunc("GET /api/auth/me", admin(auth.Me))
	mux.HandleFunc("PUT /api/auth/profile", admin(auth.UpdateProfile))
	mux.HandleFunc("PUT /api/auth/password", admin(auth.ChangePassword))
	mux.HandleFunc("POST /api/auth/logout", admin(auth.Logout))

	// Experiences
	mux.HandleFunc("GET /api/experiences/all", admin(experience.ListAll))
	mux.HandleFunc("POST /api/experiences", admin(experience.Create))
	mux.HandleFunc("PUT /api/experiences/{id}", admin(experience.Update))
	mux.HandleFunc("DELETE /api/experiences/{id}", admin(experience.Delete))

	// Projects
	mux.HandleFunc("POST /api/projects", admin(project.Create))
	mux.HandleFunc("PUT /api/projects/{id}", admin(project.Update))
	mux.HandleFunc("DELETE /api/projects/{id}", admin(project.Delete))

	// Certifications
	mux.HandleFunc("POST /api/certifications", admin(certification.Create))
	mux.HandleFunc("PUT /api/certifications/{id}", admin(certification.Update))
	mux.HandleFunc("DELETE /api/certifications/{id}", admin(certification.Delete))

	// Messages
	mux.HandleFunc("GET /api/contact", admin(contact.List))
	mux.HandleFunc("GET /api/contact/{id}", admin(contact.Get))
	mux.HandleFunc("PATCH /api/contact/{id}/read", admin(contact.MarkRead))
	mux.HandleFunc("PATCH /api/contact/{id}/unread", admin(contact.MarkUnread))
	mux.HandleFunc("DELETE /api/contact/{id}", admin(contact.Delete))

	// Profile
	mux.HandleFunc("PUT /api/profile", admin(profile.Update))
	mux.HandleFunc("POST /api/profile/image", admin(profile.UploadImage))
	mux.HandleFunc("POST /api/profile/cv", admin(profile.UploadCV))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, api.CodeNotFound, "Route not found")
	})

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (read by Recover and the error responder)
		middleware.Recover,
		middleware.RequestLogging,
		middleware.SecurityHeaders,
		middleware.CORS(app.Cfg.FrontendURLs),
		middleware.RateLimitPrefix("/api/", 100, 15*time.Minute),
		middleware.Sanitize,
	)

	return handler
}
