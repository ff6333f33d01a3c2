package httphandler

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the textual network address of the requesting client.
// Forwarding headers take precedence over the socket address so deployments
// behind a reverse proxy group timers by the real visitor: first hop of
// X-Forwarded-For, then X-Client-IP, then the RemoteAddr host. The value is
// used only for grouping recent timers, never as a credential.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}

	if ip := r.Header.Get("X-Client-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
