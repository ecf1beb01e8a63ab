package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sandeepkv93/volunteer-management-backend/internal/health"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/handler"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/middleware"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
)

const (
	defaultBodyLimit = 1 << 20
	// Multipart framing and text fields on top of the picture itself.
	multipartOverhead = 1 << 20
)

type Dependencies struct {
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	PricingHandler  *handler.PricingHandler
	ActivityHandler *handler.ActivityHandler
	UploadHandler   *handler.UploadHandler

	TokenVerifier          middleware.TokenVerifier
	SessionCookieName      string
	AuthRequireOnMutations bool
	CORSOrigins            []string
	MaxUploadBytes         int64

	AuthRateLimitRPM  int
	APIRateLimitRPM   int
	GlobalRateLimiter GlobalRateLimiterFunc
	AuthRateLimiter   AuthRateLimiterFunc

	Readiness      *health.ProbeRunner
	EnableOTelHTTP bool
}

type GlobalRateLimiterFunc func(http.Handler) http.Handler
type AuthRateLimiterFunc func(http.Handler) http.Handler

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute, "api").Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute, "auth").Middleware()
	}
	requireAuth := middleware.AuthMiddleware(dep.TokenVerifier, dep.SessionCookieName)
	requireAuthOnMutation := middleware.RequireAuthIf(dep.AuthRequireOnMutations, dep.TokenVerifier, dep.SessionCookieName)
	jsonBody := middleware.BodyLimit(defaultBodyLimit)

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.With(jsonBody, authLimiter).Post("/login", dep.AuthHandler.Login)
	r.With(jsonBody, authLimiter).Post("/create", dep.AuthHandler.Create)
	r.Get("/user/{id}/logout", dep.AuthHandler.Logout)

	r.With(requireAuth).Get("/", dep.UserHandler.List)
	r.With(requireAuth).Get("/user/{id}", dep.UserHandler.Get)
	r.With(requireAuth, middleware.BodyLimit(uploadBodyLimit(dep.MaxUploadBytes))).Put("/user/{id}/update", dep.UserHandler.UpdateProfile)
	r.With(requireAuthOnMutation, jsonBody).Put("/update/{id}", dep.UserHandler.UpdateCredentials)
	r.With(requireAuthOnMutation, jsonBody).Put("/profile-management/{id}", dep.UserHandler.ManageProfile)
	r.With(requireAuthOnMutation).Delete("/user/{id}", dep.UserHandler.Delete)

	r.Get("/uploads/*", dep.UploadHandler.Serve)

	r.Route("/pricing", func(r chi.Router) {
		r.Use(jsonBody)
		r.Get("/", dep.PricingHandler.List)
		r.Post("/", dep.PricingHandler.Create)
		r.Get("/{id}", dep.PricingHandler.Get)
		r.Put("/{id}", dep.PricingHandler.Update)
		r.Delete("/{id}", dep.PricingHandler.Delete)
	})

	r.Get("/notifications", dep.ActivityHandler.ListNotifications)
	r.Delete("/notifications/{id}", dep.ActivityHandler.DismissNotification)
	r.Get("/volunteerHistory", dep.ActivityHandler.ListVolunteerHistory)

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}

func uploadBodyLimit(maxUploadBytes int64) int64 {
	if maxUploadBytes <= 0 {
		return defaultBodyLimit + multipartOverhead
	}
	return maxUploadBytes + multipartOverhead
}
