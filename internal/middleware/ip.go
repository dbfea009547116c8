package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ExtractIP returns the client IP without port. The first valid address in
// X-Forwarded-For wins, then X-Real-IP, then RemoteAddr. Malformed header
// values are ignored.
//
// The forwarding headers are trusted, so run this behind a reverse proxy
// that overwrites them.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip, ok := parseIP(first); ok {
			return ip
		}
	}

	if ip, ok := parseIP(r.Header.Get("X-Real-IP")); ok {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseIP(s string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return addr.Unmap().String(), true
}
