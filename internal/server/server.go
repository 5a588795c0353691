package server

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/repcoach/internal/emotion"
	"github.com/claude/repcoach/internal/progression"
	"github.com/claude/repcoach/internal/workout"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine  *progression.Engine
	planner *workout.Planner
	adviser *emotion.Adviser
	log     *slog.Logger
	apiKey  string
	router  chi.Router
	tmpl    *template.Template
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the JSON API open (local prototyping mode).
func New(engine *progression.Engine, planner *workout.Planner, adviser *emotion.Adviser, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		engine:  engine,
		planner: planner,
		adviser: adviser,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// JSON API (API key required when configured)
	s.router.Route("/api/v1", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/progression/analyze", s.handleAnalyze)
		r.Post("/workout/generate", s.handleGenerateWorkout)
		r.Post("/emotion/recommend", s.handleEmotionRecommend)
		r.Get("/goals", s.handleGoals)
	})

	// HTML card views (no auth — same as the prototypes)
	s.router.Get("/", s.handleHome)
	s.router.Get("/demo", s.handleDemo)
	s.router.Post("/progression/analyze", s.handleAnalyzeHTML)
	s.router.Post("/workout/generate", s.handleGenerateWorkoutHTML)
	s.router.Post("/emotion/recommend", s.handleEmotionRecommendHTML)

	s.router.Get("/healthz", s.handleHealth)
}

// SetTemplates parses the embedded HTML templates. HTML routes respond 503
// until templates are set.
func (s *Server) SetTemplates(fsys fs.FS) error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pct": func(fraction float64) float64 { return fraction * 100 },
	}).ParseFS(fsys, "web/templates/*.html")
	if err != nil {
		return err
	}
	s.tmpl = tmpl
	return nil
}
