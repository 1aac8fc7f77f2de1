package tool

import (
	"errors"
	"strings"

	"arr-mcp/internal/domain"
)

var transientSentinels = []error{
	domain.ErrTimeout,
	domain.ErrRateLimit,
	domain.ErrCircuitOpen,
	domain.ErrProviderError,
}

// Lower-case substrings of network errors that usually clear up.
var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"timeout",
	"deadline exceeded",
	"temporarily unavailable",
	"service unavailable",
	"try again",
}

// isTransient reports whether err may go away when the call is repeated.
// Backend HTTP errors are final: their status and body are what the
// caller gets.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, domain.ErrBackendHTTP) {
		return false
	}
	for _, s := range transientSentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
