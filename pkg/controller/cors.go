package controller

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight response.
const corsMaxAge = 300

// WithCORS returns a middleware that answers preflight requests and sets CORS
// headers for allowed origins. An empty allowedOrigins list, or one
// containing "*", allows any origin.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Accept-Encoding", "Authorization", "Cache-Control", "Content-Length", "Content-Type", "Origin",
		},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
