package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/inventory-panel/docs"
	"github.com/rogerio-castellano/inventory-panel/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-panel/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

type RouterOptions struct {
	Logger *zap.Logger
	// Limiter is optional; nil disables rate limiting.
	Limiter *rl.Limiter
}

func NewRouter(s *handlers.Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	if opts.Logger != nil {
		r.Use(RequestLogger(opts.Logger))
	}
	r.Use(chimw.Recoverer)
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}

	r.Get("/", s.DashboardHandler)

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", s.ListProductsHandler)
		r.Post("/", s.CreateProductHandler)
		r.Get("/novo", s.NewProductFormHandler)
		r.Get("/editar/{id}", s.EditProductFormHandler)
		r.Post("/editar/{id}", s.UpdateProductHandler)
		r.Post("/excluir/{id}", s.DeleteProductHandler)
	})

	r.Get("/api/produtos", s.ListProductsJSONHandler)
	r.Post("/api/produtos/import", s.ImportProductsHandler)

	r.Get("/healthz", s.HealthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", views.Static()))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
