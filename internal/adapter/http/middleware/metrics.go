package middleware

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPObserver records completed requests.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
}

// Metrics returns middleware that records request counts, durations and the
// number of in-flight requests. Requests are labelled by route pattern so
// path parameters do not inflate cardinality.
func Metrics(observer HTTPObserver, inFlight prometheus.Gauge) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			inFlight.Inc()
			defer inFlight.Dec()

			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			observer.ObserveHTTP(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}
