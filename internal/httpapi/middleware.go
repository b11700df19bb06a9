package httpapi

import (
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/minibook-dev/minibook/internal/logger"
)

// requestLogger stores a logger tagged with the request ID in the request
// context and logs one line per request once it completes.
func requestLogger(l zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			reqLog := l.With().Str("req_id", chimw.GetReqID(r.Context())).Logger()

			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), reqLog)))

			reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request complete")
		})
	}
}

// recoverer logs panics as errors and returns 500.
func recoverer(l zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.Error().
						Str("req_id", chimw.GetReqID(r.Context())).
						Interface("err", rec).
						Str("stack", string(debug.Stack())).
						Msg("panic")
					writeErr(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
