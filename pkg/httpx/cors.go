package httpx

import "net/http"

// CORSConfig controls the headers written by CORS.
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
}

// DefaultCORS mirrors what the browser frontend expects during development.
var DefaultCORS = CORSConfig{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, PUT, DELETE",
	AllowHeaders: "Content-Type, Authorization",
}

// CORS adds cross-origin headers to every response and answers preflight
// requests directly.
func CORS(cfg CORSConfig) Middleware {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = DefaultCORS.AllowOrigin
	}
	if cfg.AllowMethods == "" {
		cfg.AllowMethods = DefaultCORS.AllowMethods
	}
	if cfg.AllowHeaders == "" {
		cfg.AllowHeaders = DefaultCORS.AllowHeaders
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			h.Set("Access-Control-Allow-Methods", cfg.AllowMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowHeaders)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
