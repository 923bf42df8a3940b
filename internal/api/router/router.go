package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brsaude/patient-intake/internal/http/handlers"
	httpmiddleware "github.com/brsaude/patient-intake/internal/http/middleware"
	"github.com/brsaude/patient-intake/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Patients           *handlers.PatientsHandler
	AdminToken         string
	CORSAllowedOrigins []string
	MetricsHandler     http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handlers.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/patients", func(api chi.Router) {
		api.Post("/", cfg.Patients.Submit)

		// Read and export paths are admin-token gated; the write path
		// stays open to the public form.
		api.Group(func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminToken(cfg.AdminToken))
			admin.Get("/", cfg.Patients.List)
			admin.Get("/export", cfg.Patients.ExportCSV)
		})
	})

	return r
}
