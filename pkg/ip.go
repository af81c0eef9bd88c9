package pkg

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)

// IPIsLocal reports whether ip is the loopback or a docker bridge gateway.
func IPIsLocal(ip string) bool {
	if ip == "localhost" || ip == "::1" || strings.HasPrefix(ip, "127.") {
		return true
	}
	return localDockerIpRegex.MatchString(ip)
}

// ClientIP returns the caller's IP, preferring the reverse proxy headers.
// Every local address collapses to "localhost".
func ClientIP(r *http.Request) string {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		// first hop is the original client
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			addr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	if IPIsLocal(addr) {
		return "localhost"
	}
	return addr
}
