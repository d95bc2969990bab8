package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// Metrics records request counts and latency per route pattern. It must wrap
// the http.ServeMux directly: the mux sets r.Pattern on the request it
// receives, and any copy made in between would hide it.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		observability.RecordHTTPRequest(r.Method, route, sw.status, time.Since(start))
	})
}
