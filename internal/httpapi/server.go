// Package httpapi exposes derivations over HTTP. It is stateless: every
// request carries its own transactions and nothing is stored.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/accounts"
	"github.com/minibook-dev/minibook/internal/book"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 10 << 20

// Options configures derivations performed by the server.
type Options struct {
	Classifier *accounts.Classifier // nil means the built-in rules
	Tolerance  *decimal.Decimal     // nil means report.DefaultTolerance
	// Registry receives the server's metrics. A fresh registry is used
	// when nil.
	Registry *prometheus.Registry
}

// Server wires handlers and middleware using Chi.
type Server struct {
	opts    []book.Option
	log     zerolog.Logger
	metrics *metrics
	rt      *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
func New(o Options, log zerolog.Logger) *Server {
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}
	opts := []book.Option{book.WithClassifier(o.Classifier)}
	if o.Tolerance != nil {
		opts = append(opts, book.WithTolerance(*o.Tolerance))
	}

	s := &Server{
		opts:    opts,
		log:     log,
		metrics: newMetrics(o.Registry),
		rt:      chi.NewRouter(),
	}
	s.rt.Use(chimw.RequestID)
	s.rt.Use(requestLogger(log))
	s.rt.Use(s.metrics.middleware)
	s.rt.Use(recoverer(log))
	s.routes(o.Registry)
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

func (s *Server) routes(reg *prometheus.Registry) {
	s.rt.Post("/v1/books", s.postBook)
	s.rt.Post("/v1/books/ledgers/{account}", s.postLedger)
	s.rt.Get("/v1/sample", s.getSample)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler(reg))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.rt,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("minibook listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}
