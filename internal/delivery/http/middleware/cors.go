package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

const corsMaxAge = 86400

var (
	corsAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowHeaders = []string{"Content-Type", "Accept", RequestIDHeader}
)

// CORS returns a handler that adds CORS headers for allowed origins and
// answers OPTIONS preflight requests. An origin of "*" allows every origin.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		o = strings.TrimSuffix(o, "/")
		if o != "" {
			origins = append(origins, o)
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: corsAllowMethods,
		AllowedHeaders: corsAllowHeaders,
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsMaxAge,
	}).Handler(next)
}
