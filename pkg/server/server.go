// Package server exposes the diagram pipeline over HTTP.
//
// The API mirrors the CLI: render and parse requests execute through
// the same [pipeline.Runner], so caching and logging behave
// identically across entry points. Saved diagrams are backed by a
// [store.Store].
//
// # Endpoints
//
//	POST   /api/render        render source text
//	POST   /api/parse         parse source text into the diagram model
//	GET    /api/diagrams      list saved diagrams
//	POST   /api/diagrams      parse and save a diagram
//	GET    /api/diagrams/{id} fetch one saved diagram
//	DELETE /api/diagrams/{id} delete a saved diagram
//	GET    /healthz           liveness and version
//
// Render requests for a single format answer with the raw artifact and
// its content type; multi-format requests get a JSON envelope with
// base64 artifacts. Every response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

// Server is the HTTP preview API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	addr   string
}

// Options configures a [Server].
type Options struct {
	// Addr is the listen address. Empty means ":8080".
	Addr string

	// Runner executes render and parse requests. Nil means an
	// uncached default runner.
	Runner *pipeline.Runner

	// Store backs the saved-diagram endpoints. Nil disables them:
	// the endpoints answer 503 until a store is configured.
	Store store.Store

	// Logger receives request and error logs. Nil means the package
	// default.
	Logger *log.Logger
}

// New creates a server. Zero-value options get working defaults, see
// [Options].
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	return &Server{
		runner: opts.Runner,
		store:  opts.Store,
		logger: opts.Logger,
		addr:   opts.Addr,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/parse", s.handleParse)

		r.Route("/diagrams", func(r chi.Router) {
			r.Use(s.storeRequired)
			r.Get("/", s.handleListDiagrams)
			r.Post("/", s.handleSaveDiagram)
			r.Get("/{id}", s.handleGetDiagram)
			r.Delete("/{id}", s.handleDeleteDiagram)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully, waiting up to ten seconds for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
