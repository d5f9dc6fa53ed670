package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kurochkinivan/doc_converter/internal/config"
)

type Dependencies struct {
	Converter   Converter
	Artifacts   ArtifactReader
	Conversions ConversionsRepository
	Stats       StatsProvider
}

type Server struct {
	httpServer *http.Server
}

func NewRouter(log *slog.Logger, maxUploadSize int64, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	upload := NewUploadHandler(log, deps.Converter, maxUploadSize)
	download := NewDownloadHandler(log, deps.Artifacts)
	conversions := NewConversionsHandler(log, deps.Conversions)
	health := NewHealthHandler(deps.Stats)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", upload.Upload)
		r.Get("/download/{filename}", download.Download)
		r.Get("/download/*", download.RejectNested)
		r.Get("/conversions", conversions.GetConversions)
		r.Get("/health", health.Health)
	})

	return r
}

func NewServer(cfg config.HTTP, log *slog.Logger, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg.MaxUploadSize, deps),
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
