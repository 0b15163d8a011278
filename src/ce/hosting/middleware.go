package hosting

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"go.uber.org/zap"
)

// HeaderRequestID carries the id of the request. Incoming ids are kept so
// that logs can be correlated with the proxy in front of the storefront.
const HeaderRequestID = "X-Request-ID"

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithRequestLog assigns a request id and logs the request once it is served.
func WithRequestLog(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(HeaderRequestID)

		if id == "" {
			id = uuid.NewString()
			r.Header.Set(HeaderRequestID, id)
		}

		w.Header().Set(HeaderRequestID, id)

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)

		slog.Debug(slog.LogOpts{
			Msg:   "request served",
			Level: slog.DL2,
			Payload: []zap.Field{
				zap.String("id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
			},
		})
	})
}
