package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests no route pattern claimed, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// RequestObserver records one served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every request to obs, labelled by the ServeMux pattern that
// matched it. It must wrap the mux directly so r.Pattern is visible afterwards.
func Metrics(obs RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		obs.ObserveRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
