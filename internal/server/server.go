// Package server exposes the catalog over a local HTTP API and serves the
// web frontend's static assets.
//
// Every catalog operation is mirrored under /api with the same paths as
// the upstream API. Responses pass through the catalog client, so list
// and taxonomy endpoints are answered from its cache. Static assets are
// served with a long-lived immutable Cache-Control header.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
	"github.com/matzehuels/cinedex/pkg/observability"
)

// ImmutableCacheControl is sent with every static asset.
const ImmutableCacheControl = "public, max-age=31536000, immutable"

// Options configures a Server.
type Options struct {
	Static   string                  // Directory of static assets; "" disables static serving
	Logger   *log.Logger             // Request logger (default log.Default())
	Counters *observability.Counters // Exposed at /debug/stats when set
}

// Server is the local HTTP front of a catalog client.
type Server struct {
	client   *catalog.Client
	logger   *log.Logger
	counters *observability.Counters
	router   chi.Router
}

// New builds the router for client.
func New(client *catalog.Client, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{
		client:   client,
		logger:   opts.Logger,
		counters: opts.Counters,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.counters != nil {
		r.Get("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, s.counters.Snapshot())
		})
	}
	r.Route("/api", s.apiRoutes)

	if opts.Static != "" {
		r.Handle("/*", Immutable(http.FileServer(http.Dir(opts.Static))))
	}

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr, "upstream", s.client.BaseURL())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Immutable marks every response from next as cacheable forever.
func Immutable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", ImmutableCacheControl)
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http",
				"method", r.Method,
				"path", r.URL.RequestURI(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Millisecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers with {"error": ..., "code": ...}. Upstream status
// errors keep the upstream status code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := apierr.Classify(err)
	status := apierr.HTTPStatus(e.Code)
	if e.Code == apierr.ErrCodeUpstream && e.Status > 0 {
		status = e.Status
	}
	if status >= http.StatusInternalServerError {
		s.logger.Warn("upstream request failed", "path", r.URL.Path, "code", e.Code, "err", err)
	}
	writeJSON(w, status, map[string]string{
		"error": e.Message,
		"code":  string(e.Code),
	})
}
