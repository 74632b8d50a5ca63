package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/wgomg/sumario/internal/metrics"
)

type ctxKey string

const reqIDKey ctxKey = "reqid"

const RequestIDHeader = "X-Request-ID"

// RequestID returns the id the middleware stored in ctx.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(reqIDKey).(string)
	return reqID
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// WithRequestID tags each request with an id, reusing the caller's X-Request-ID
// when present, and counts the response status per route.
func WithRequestID(next http.Handler, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		inner := r.WithContext(context.WithValue(r.Context(), reqIDKey, reqID))
		next.ServeHTTP(rec, inner)

		if m != nil {
			route := inner.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(route, rec.status)
		}
	})
}
