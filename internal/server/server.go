// Package server exposes the plan/chat demo over HTTP for the web front-end.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rahul/yojana/internal/llm"
	"github.com/rahul/yojana/internal/observability"
	"github.com/rahul/yojana/internal/planner"
	"github.com/rahul/yojana/internal/session"
)

type Server struct {
	client   llm.Client
	planner  *planner.Planner
	sessions *session.Manager
	logger   *observability.Logger
	router   chi.Router
}

func New(client llm.Client, pl *planner.Planner, sessions *session.Manager, logger *observability.Logger, origins []string) *Server {
	s := &Server{
		client:   client,
		planner:  pl,
		sessions: sessions,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.observe)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/chat", s.handleChat)
	r.Post("/api/plan", s.handlePlan)
	r.Post("/api/execute", s.handleExecute)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleSessionCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleSessionState)
			r.Delete("/", s.handleSessionClose)
			r.Post("/submit", s.handleSessionSubmit)
			r.Post("/steps", s.handleSessionSteps)
			r.Post("/run", s.handleSessionRun)
		})
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// observe feeds the request log and the dashboard counters.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		observability.CountRequest()
		s.logger.LogRequest(r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
