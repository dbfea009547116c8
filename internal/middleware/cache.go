package middleware

import (
	"net/http"
	"strings"
)

const (
	cachePrivateRead = "private, max-age=60, must-revalidate"
	cacheDocs        = "public, max-age=3600"
	cacheNoStore     = "no-store"
	cacheDefault     = "no-cache"
)

// CacheControl sets Cache-Control by method and path. Family data is private:
// API reads may be cached by the browser only, mutations never.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cachePolicy(r))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(r *http.Request) string {
	if isMutation(r.Method) {
		return cacheNoStore
	}
	switch path := r.URL.Path; {
	case strings.HasPrefix(path, "/swagger/"):
		return cacheDocs
	case strings.HasPrefix(path, "/api/"):
		return cachePrivateRead
	default:
		return cacheDefault
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}
