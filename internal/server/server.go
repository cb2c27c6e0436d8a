package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "bdfd-catalog"

// Options configures a Server.
type Options struct {
	Port           int
	RequestTimeout time.Duration
	Logger         *slog.Logger
	Functions      FunctionCatalog
	Callbacks      CallbackCatalog
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// Server serves a read-only JSON mirror of the catalog.
type Server struct {
	Router     *chi.Mux
	Port       int
	logger     *slog.Logger
	httpServer *http.Server
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(TimeoutMiddleware(opts.RequestTimeout))
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName)
	})

	h := &handlers{functions: opts.Functions, callbacks: opts.Callbacks}
	r.Get("/healthz", h.health)
	if opts.Functions != nil {
		r.Route("/v1/functions", func(r chi.Router) {
			r.Get("/", h.listFunctions)
			r.Get("/tags", h.functionTags)
			r.Get("/{tag}", h.functionInfo)
		})
	}
	if opts.Callbacks != nil {
		r.Route("/v1/callbacks", func(r chi.Router) {
			r.Get("/", h.listCallbacks)
			r.Get("/tags", h.callbackTags)
			r.Get("/{tag}", h.callbackInfo)
		})
	}
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorBody(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorBody(w, http.StatusMethodNotAllowed, "invalid_argument", "method "+r.Method+" not allowed")
	})

	return &Server{
		Router:     r,
		Port:       opts.Port,
		logger:     logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start listens until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting server", slog.Int("port", s.Port))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
