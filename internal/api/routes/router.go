package routes

import (
	"net/http"

	"github.com/medicare-app/backend/internal/api/handlers"
	"github.com/medicare-app/backend/internal/api/middleware"
	"github.com/medicare-app/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	symptomHandler    *handlers.SymptomHandler
	predictionHandler *handlers.PredictionHandler
	authHandler       *handlers.AuthHandler
	feedbackHandler   *handlers.FeedbackHandler

	cacheMiddleware   *middleware.CacheMiddleware
	sessionMiddleware func(http.Handler) http.Handler
	metrics           *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	symptomHandler *handlers.SymptomHandler,
	predictionHandler *handlers.PredictionHandler,
	authHandler *handlers.AuthHandler,
	feedbackHandler *handlers.FeedbackHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	sessionMiddleware func(http.Handler) http.Handler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		symptomHandler:    symptomHandler,
		predictionHandler: predictionHandler,
		authHandler:       authHandler,
		feedbackHandler:   feedbackHandler,

		cacheMiddleware:   cacheMiddleware,
		sessionMiddleware: sessionMiddleware,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Symptom catalog endpoints
	r.mux.HandleFunc("GET /api/symptoms", r.symptomHandler.ListSymptoms)
	r.mux.HandleFunc("GET /api/symptoms/search", r.symptomHandler.SearchSymptoms)

	// Consultation endpoints
	r.mux.HandleFunc("POST /api/predict", r.predictionHandler.Predict)
	r.mux.HandleFunc("GET /api/history", middleware.RequireSession(r.predictionHandler.GetHistory))

	// Account endpoints
	r.mux.HandleFunc("POST /api/auth/signup", r.authHandler.Signup)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("POST /api/auth/reset/request", r.authHandler.RequestPasswordReset)
	r.mux.HandleFunc("POST /api/auth/reset/confirm", r.authHandler.ConfirmPasswordReset)

	// Feedback endpoints
	r.mux.HandleFunc("POST /api/feedback", r.feedbackHandler.SubmitFeedback)
	r.mux.HandleFunc("GET /api/admin/feedback", middleware.RequireSession(r.feedbackHandler.ListFeedback))

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux

	// Session resolution sits closest to the handlers so every route sees it.
	if r.sessionMiddleware != nil {
		handler = r.sessionMiddleware(handler)
	}

	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
