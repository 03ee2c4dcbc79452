package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"laborlens/internal/loader"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	loader    *loader.Loader
	config    Config
	templates *template.Template
}

// Config holds dashboard configuration
type Config struct {
	Port             string
	DefaultYearFloor int
}

// NewApp creates the dashboard application
func NewApp(config Config, l *loader.Loader) (*App, error) {
	funcMap := template.FuncMap{
		"fmtValue": formatValue,
		"fmtDate": func(t time.Time) string {
			return t.Format("Jan 2006")
		},
		"pct": func(part, total float64) string {
			if total == 0 {
				return "0.0"
			}
			return fmt.Sprintf("%.1f", part/total*100)
		},
		"selected": func(names []string, name string) bool {
			for _, n := range names {
				if n == name {
					return true
				}
			}
			return false
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		loader:    l,
		config:    config,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS, _ := fs.Sub(embeddedFiles, "static")
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Main pages
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/about", a.handleAbout)
	a.router.Get("/healthz", a.handleHealthz)

	// HTMX fragment endpoints
	a.router.Get("/fragments/summary", a.handleFragmentSummary)
	a.router.Get("/fragments/comparison", a.handleFragmentComparison)
	a.router.Get("/fragments/proportion", a.handleFragmentProportion)
	a.router.Get("/fragments/preview", a.handleFragmentPreview)

	// Chart data endpoints
	a.router.Get("/api/chart/lines.json", a.handleChartLines)
	a.router.Get("/api/chart/comparison.json", a.handleChartComparison)

	// Export
	a.router.Get("/download", a.handleDownload)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	log.Printf("Starting LaborLens dashboard on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler tree for serving and for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

func (a *App) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	if err := a.templates.ExecuteTemplate(w, "error.html", map[string]interface{}{
		"Title":   "LaborLens",
		"Message": message,
	}); err != nil {
		log.Printf("Template error: %v", err)
	}
}

func (a *App) renderPartial(w http.ResponseWriter, templateName string, data interface{}) {
	a.renderTemplate(w, templateName, data)
}

// formatValue renders a measurement compactly: up to three decimals,
// trailing zeros trimmed, NaN as a placeholder
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
