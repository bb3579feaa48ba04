package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-panel/internal/repo"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds everything the handlers need. It is built once in main and
// shared by all requests.
type Server struct {
	products repo.ProductRepository
	metrics  repo.MetricsRepository
	store    Pinger
	views    *views.Renderer
	log      *zap.Logger
}

type Dependencies struct {
	Products repo.ProductRepository
	Metrics  repo.MetricsRepository
	Store    Pinger
	Views    *views.Renderer
	Logger   *zap.Logger
}

func NewServer(deps Dependencies) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		products: deps.Products,
		metrics:  deps.Metrics,
		store:    deps.Store,
		views:    deps.Views,
		log:      log,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := s.views.Render(w, http.StatusOK, name, data); err != nil {
		s.log.Error("render failed", zap.String("template", name), zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "Erro ao renderizar página", http.StatusInternalServerError)
	}
}

// storeError logs the failure and answers with a generic 500.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log.Error("store operation failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, msg, http.StatusInternalServerError)
}

// HealthHandler godoc
// @Summary Store health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "unavailable"
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Warn("health check failed", zap.Error(err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
