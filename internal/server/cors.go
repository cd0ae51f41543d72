package server

import "net/http"

// corsMiddleware allows the configured frontend origins. The API is
// consumed by a single trusted SPA, so this stays deliberately small:
// reflect the origin when allowed, answer preflights, nothing more.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)
			if origin != "" && (allowAll || allowed[origin]) {
				if allowAll {
					w.Header().Set(HeaderAllowOrigin, "*")
				} else {
					w.Header().Set(HeaderAllowOrigin, origin)
					w.Header().Add(HeaderVary, HeaderOrigin)
				}
				w.Header().Set(HeaderAllowMethods, HeaderAllowedMethods)
				w.Header().Set(HeaderAllowHeaders, HeaderAllowedReqHeader)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestSizeLimitMiddleware caps the request body size
func requestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
