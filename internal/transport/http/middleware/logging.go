package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	appctx "github.com/baechuer/blog-api/internal/pkg/context"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog emits one structured log line per request.
func AccessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			reqID, _ := appctx.RequestID(r.Context())

			evt := log.Info()
			if rec.status >= 500 {
				evt = log.Error()
			}
			evt.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Str("request_id", reqID).
				Str("remote", clientIP(r)).
				Msg("http request")
		})
	}
}
