package resilience

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// IsTransient reports whether an error is safe to retry: network timeouts,
// connection resets, and the rate-limit / 5xx messages surfaced by the
// Salesforce client as wrapped strings.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// transientPatterns match wrapped errors from HTTP clients that carry no
// typed cause.
var transientPatterns = []string{
	"connection reset by peer",
	"broken pipe",
	"temporary failure in name resolution",
	"no such host",
	"tls handshake timeout",
	"i/o timeout",
	"request_limit_exceeded",
	"server_unavailable",
	"unable_to_lock_row",
	"too many requests",
	"status 429",
	"status 500",
	"status 502",
	"status 503",
	"status 504",
}
