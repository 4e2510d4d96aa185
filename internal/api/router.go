package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/fernandezvara/passmeter/internal/metrics"
)

// RouterConfig collects what NewRouter needs besides the handler.
type RouterConfig struct {
	Log     *zap.Logger
	Metrics *metrics.Metrics
	// MetricsPath mounts the Prometheus handler when Metrics is non-nil.
	MetricsPath string
}

// NewRouter wires the handler endpoints and middleware into a chi router.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(TraceMiddleware)
	r.Use(RequestLogger(log, cfg.Metrics))
	r.Use(middleware.Recoverer)
	// Browser front ends are served from anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", TraceHeader},
		ExposedHeaders: []string{TraceHeader},
		MaxAge:         300,
	}))

	r.Post("/check_password", h.CheckPassword)
	r.Get("/health", h.Health)
	r.Get("/api", h.Info)

	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		r.Method(http.MethodGet, cfg.MetricsPath, cfg.Metrics.Handler())
	}

	return r
}
