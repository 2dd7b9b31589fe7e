package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/platform/config"
	"taskboard/internal/platform/metrics"
	"taskboard/internal/transport/http/api"
	authhandler "taskboard/internal/transport/http/handlers/auth"
	reporthandler "taskboard/internal/transport/http/handlers/report"
	"taskboard/internal/transport/http/middleware"
)

const loginBodyLimit = 4 * 1024

// New assembles the HTTP surface over a snapshot source. The router is
// returned rather than served so tests can drive it with httptest.
func New(cfg config.Config, source reporthandler.Source, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.BodyLimit(loginBodyLimit))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled && collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled() {
			authHandler := authhandler.NewHandler(cfg.JWTSecret, cfg.DashboardPasswordHash, cfg.TokenTTL)
			authHandler.RegisterRoutes(r)
		}

		reportHandler := reporthandler.NewHandler(source, collector)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(cfg.JWTSecret, cfg.AuthEnabled()))
			reportHandler.RegisterRoutes(r)
		})
	})

	return router
}
