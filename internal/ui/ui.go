// Package ui serves the SceneSense browser interface.
package ui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	secure "github.com/srikrsna/security-headers"

	"scenesense/internal/scene"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Options tunes the HTTP surface. Zero values disable rate limiting.
type Options struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// UI wires the analysis service to the browser. Completed results are kept
// in an in-memory cache for 24 hours so export downloads keep working after
// the page renders.
type UI struct {
	router  chi.Router
	svc     *scene.Service
	results *cache.Cache
	tmpl    *template.Template
}

func New(svc *scene.Service, opts Options) *UI {
	ui := &UI{
		router:  chi.NewRouter(),
		svc:     svc,
		results: cache.New(24*time.Hour, time.Hour),
		tmpl: template.Must(template.New("").Funcs(template.FuncMap{
			"percent":   func(f float64) int { return int(f * 100) },
			"confclass": confidenceClass,
		}).ParseFS(templateFS, "templates/*.html")),
	}
	ui.setupRoutes(opts)
	return ui
}

func (ui *UI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ui.router.ServeHTTP(w, r)
}

func (ui *UI) setupRoutes(opts Options) {
	ui.router.Use(middleware.Recoverer)
	ui.router.Use(requestLogger)
	ui.router.Use(corsMiddleware)
	ui.router.Use(secureHeaders().Middleware())

	ui.router.Get("/", ui.handleHome)
	ui.router.Get("/health", handleHealth)
	ui.router.Get("/export/{id}", ui.handleExportJSON)
	ui.router.Get("/export/{id}/shotlist.csv", ui.handleExportShotList)
	ui.router.Get("/export/{id}/batch.csv", ui.handleExportBatch)

	ui.router.Group(func(r chi.Router) {
		if opts.RateLimitRequests > 0 && opts.RateLimitWindow > 0 {
			r.Use(httprate.LimitByIP(opts.RateLimitRequests, opts.RateLimitWindow))
		}
		r.Post("/analyze", ui.handleAnalyze)
		r.Post("/batch", ui.handleBatch)
	})

	ui.router.Handle("/static/*", http.FileServer(http.FS(staticFS)))
}

func secureHeaders() *secure.Secure {
	return &secure.Secure{
		STSMaxAgeSeconds:     90 * 24 * 60 * 60,
		STSIncludeSubdomains: true,
		ContentTypeNoSniff:   true,
		XSSFilterBlock:       true,
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func confidenceClass(f float64) string {
	switch {
	case f >= 0.8:
		return "badge-high"
	case f >= 0.5:
		return "badge-mid"
	default:
		return "badge-low"
	}
}
