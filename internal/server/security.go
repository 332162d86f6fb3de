package server

import (
	"net"
	"net/http"
	"strings"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}

// trustedProxies matches remote addresses against exact IPs and CIDR ranges
type trustedProxies struct {
	ips  map[string]struct{}
	nets []*net.IPNet
}

func newTrustedProxies(entries []string) trustedProxies {
	tp := trustedProxies{ips: make(map[string]struct{})}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if _, n, err := net.ParseCIDR(e); err == nil {
			tp.nets = append(tp.nets, n)
			continue
		}
		if ip := net.ParseIP(e); ip != nil {
			tp.ips[ip.String()] = struct{}{}
		}
	}
	return tp
}

func (tp trustedProxies) contains(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if _, ok := tp.ips[ip.String()]; ok {
		return true
	}
	for _, n := range tp.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honoured when the direct peer is a trusted proxy.
func extractIP(r *http.Request, proxies trustedProxies) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if proxies.contains(remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// the rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			if ip := strings.TrimSpace(ips[len(ips)-1]); net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	return remoteIP
}

func isOperationalPath(path string) bool {
	for _, p := range OperationalPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
