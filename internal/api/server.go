// Package api assembles the HTTP server: the middleware chain, the
// /reviews and /tournaments resources, and the health endpoint.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Options wires the server's dependencies.
type Options struct {
	// Port to listen on.
	Port string

	// Reviews handles the /reviews resource.
	Reviews chi.Router

	// Directory handles the /tournaments resource.
	Directory chi.Router

	// HealthCheck pings the review store. Nil means no dependency to check.
	HealthCheck func(context.Context) error
}

// Server is the HTTP server for the reviews API.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and returns a server ready to start.
func NewServer(opts Options) *Server {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recover)
	r.Use(CORS)

	r.Get("/health", healthHandler(opts.HealthCheck))
	r.Mount("/reviews", opts.Reviews)
	r.Mount("/tournaments", opts.Directory)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + opts.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start listens and serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type healthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

// healthHandler reports liveness plus the review store's reachability.
// The directory half of the API works without Redis, so a failed ping is
// reported but does not fail the endpoint.
func healthHandler(check func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Redis: "up"}

		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				resp.Redis = "down"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
