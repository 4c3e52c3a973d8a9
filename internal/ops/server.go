// Package ops serves the operational HTTP endpoint: a liveness probe and
// a JSON status summary of the running bot.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"telegram-ai-bot/internal/game"
	"telegram-ai-bot/internal/game/trivia"
)

// Status is the payload served by /status.
type Status struct {
	Instance      string    `json:"instance"`
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Games         []string  `json:"games"`
	PendingTrivia int       `json:"pending_trivia"`
}

// Server exposes liveness and status endpoints next to the bot. Each
// process gets a fresh instance ID so restarts are visible to monitoring.
type Server struct {
	srv      *http.Server
	instance string
	started  time.Time
	games    *game.Registry
	trivia   *trivia.Store
}

// NewServer creates the operational server listening on addr.
func NewServer(addr string, games *game.Registry, store *trivia.Store) *Server {
	s := &Server{
		instance: uuid.NewString(),
		started:  time.Now(),
		games:    games,
		trivia:   store,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/status", s.handleStatus)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start serves until Shutdown is called. A closed-server result is not
// an error.
func (s *Server) Start() error {
	log.Info().Str("addr", s.srv.Addr).Str("instance", s.instance).Msg("Starting ops endpoint")

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	games := s.games.Commands()
	sort.Strings(games)

	respondJSON(w, http.StatusOK, Status{
		Instance:      s.instance,
		StartedAt:     s.started,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Games:         games,
		PendingTrivia: s.trivia.PendingCount(),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode ops response")
	}
}
