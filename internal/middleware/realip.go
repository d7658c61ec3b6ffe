package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustProxies replaces r.RemoteAddr with the client address carried in
// X-Forwarded-For (or X-Real-IP) when, and only when, the direct peer is
// inside one of the trusted prefixes. X-Forwarded-For is read right to left
// and the first hop outside the trusted set is taken as the client, so a
// client cannot pick its own address by prepending entries.
func TrustProxies(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(trusted) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			peer, ok := parseAddr(ClientIP(r))
			if !ok || !isTrusted(trusted, peer) {
				next.ServeHTTP(w, r)
				return
			}

			if client, ok := forwardedClient(r, trusted); ok {
				r = r.WithContext(r.Context())
				r.RemoteAddr = net.JoinHostPort(client.String(), "0")
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forwardedClient(r *http.Request, trusted []netip.Prefix) (netip.Addr, bool) {
	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		var last netip.Addr
		for i := len(hops) - 1; i >= 0; i-- {
			addr, ok := parseAddr(strings.TrimSpace(hops[i]))
			if !ok {
				// Garbage past this point was written by the client.
				break
			}
			last = addr
			if !isTrusted(trusted, addr) {
				return addr, true
			}
		}
		if last.IsValid() {
			return last, true
		}
		return netip.Addr{}, false
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return parseAddr(strings.TrimSpace(xri))
	}
	return netip.Addr{}, false
}

func parseAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isTrusted(trusted []netip.Prefix, addr netip.Addr) bool {
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
