package middleware

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_HSTSWithTLS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, req)
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := RateLimit(ctx, RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})(okHandler)

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_ZeroDisables(t *testing.T) {
	h := RateLimit(context.Background(), RateLimitConfig{})(okHandler)
	for range 50 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestBearerAuth(t *testing.T) {
	h := BearerAuth("secret", "/health")(okHandler)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing", "/ag-ui", "", http.StatusUnauthorized},
		{"wrong", "/ag-ui", "Bearer nope", http.StatusUnauthorized},
		{"ok", "/ag-ui", "Bearer secret", http.StatusOK},
		{"open path", "/health", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestBearerAuth_EmptyTokenDisables(t *testing.T) {
	rec := httptest.NewRecorder()
	BearerAuth("")(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/a2a", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIP_SpoofingPrevention(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:5555"
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	assert.Equal(t, "203.0.113.9", clientIP(req, nil))
	assert.Equal(t, "203.0.113.9", clientIP(req, []string{"10.0.0.1"}))

	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "1.2.3.4", clientIP(req, []string{"10.0.0.1"}))

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "5.6.7.8")
	assert.Equal(t, "5.6.7.8", clientIP(req, []string{"10.0.0.1"}))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	Chain(okHandler, mw("a"), mw("b")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b"}, order)
}
