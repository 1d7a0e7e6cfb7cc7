package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that Chain(a, b)(h) == a(b(h)); a runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Passthrough is the identity middleware.
func Passthrough(next http.Handler) http.Handler { return next }

// Skip applies mw only to requests for which skip reports false.
func Skip(skip func(*http.Request) bool, mw Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip(r) {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

// IsProbe reports whether r is a liveness or readiness probe.
func IsProbe(r *http.Request) bool {
	return r.URL.Path == "/live" || r.URL.Path == "/ready"
}
