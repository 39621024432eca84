// Package server exposes the document service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/config"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/documents"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 10 * time.Second

// Server routes HTTP requests to the document service.
type Server struct {
	cfg    config.Server
	docs   *documents.Service
	log    logger.ILogger
	spec   *openapi3.T
	router chi.Router
}

// New creates a server and registers its routes.
func New(cfg config.Server, docs *documents.Service, log logger.ILogger) *Server {
	s := &Server{
		cfg:  cfg,
		docs: docs,
		log:  log,
		spec: Spec(cfg.DebugRoutes, docs.Formats()),
	}

	s.router = s.routes()

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.json", s.handleOpenAPI)
	r.Get("/resources/{filename}", s.handleResource)
	r.Get("/receipts/{filename}", s.handleReceipt)

	if s.cfg.DebugRoutes {
		r.Route("/debug", func(r chi.Router) {
			r.Get("/pdf-test", s.handlePDFTest)
			r.Get("/test-direct-pdf", s.handleDirectPDF)
			r.Get("/pdf-raw/{docType}", s.handlePreview)
			r.Get("/extract-content/{docType}", s.handleExtract)
			r.Get("/pdf-content/{docType}", s.handleInspect)
		})
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Listening on %s (debug routes: %t)", s.cfg.Addr, s.cfg.DebugRoutes)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	return nil
}
