package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records the request counter and latency histogram. The route
// pattern (not the raw URL) is used as the label so path parameters do not
// explode the cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.HTTPRequestsTotal.
			WithLabelValues(route, r.Method, strconv.Itoa(mw.status)).
			Inc()
		h.metrics.HTTPRequestDuration.
			WithLabelValues(route).
			Observe(time.Since(start).Seconds())
	})
}
