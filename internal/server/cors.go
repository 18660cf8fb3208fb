package server

import (
	"net/http"
	"strings"
)

// CORSMiddleware answers browser preflight requests and attaches CORS headers.
// allowedOrigins is a comma-separated list; empty allows any origin.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case len(origins) == 0:
				w.Header().Set(HeaderAllowOrigin, "*")
			case originAllowed(origins, origin):
				w.Header().Set(HeaderAllowOrigin, origin)
			}

			w.Header().Set(HeaderAllowMethods, CORSAllowedMethods)
			w.Header().Set(HeaderAllowHeaders, CORSAllowedHeaders)
			w.Header().Set(HeaderMaxAge, CORSMaxAgeSeconds)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(allowedOrigins string) []string {
	var origins []string
	for _, origin := range strings.Split(allowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func originAllowed(origins []string, origin string) bool {
	for _, allowed := range origins {
		if allowed == origin {
			return true
		}
	}
	return false
}
