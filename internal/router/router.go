// Package router sets up all HTTP routes and middleware chains for the
// inkwell blog. Every route is a read-only JSON endpoint.
package router

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/metrics"
	"inkwell/internal/middleware"
)

// New creates and returns the configured Chi router. limiter may be nil to
// serve the public routes without rate limiting. Forwarding headers are
// honoured only from peers inside trusted.
func New(public *handlers.Public, limiter *middleware.RateLimiter, trusted []netip.Prefix) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.TrustProxies(trusted))
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)

	r.NotFound(jsonStatus(http.StatusNotFound))
	r.MethodNotAllowed(jsonStatus(http.StatusMethodNotAllowed))

	// Health check and metrics, never rate-limited.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/", public.Index)
		r.Get("/hot", public.Hot)
		r.Get("/navs", public.Navs)
		r.Get("/search", public.Search)
		r.Get("/category/{id}", public.Category)
		r.Get("/tag/{id}", public.Tag)
		r.Get("/author/{id}", public.Author)
		r.Get("/post/{id}", public.Post)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// jsonStatus answers with {"error": "<status text>"}.
func jsonStatus(code int) http.HandlerFunc {
	body := []byte(`{"error":"` + http.StatusText(code) + `"}`)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		w.Write(body)
	}
}
