package gateway

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"arr-mcp/internal/domain"
)

// ClientInfo describes an authenticated caller.
type ClientInfo struct {
	Name string
}

// Authenticator validates the token a caller presents.
type Authenticator interface {
	Authenticate(token string) (*ClientInfo, error)
}

// TokenAuth accepts a single shared token. An empty token accepts everyone.
type TokenAuth struct {
	token []byte
}

// NewTokenAuth returns an authenticator for token.
func NewTokenAuth(token string) *TokenAuth {
	return &TokenAuth{token: []byte(token)}
}

// Enabled reports whether a token is required.
func (a *TokenAuth) Enabled() bool { return len(a.token) > 0 }

// Authenticate compares token in constant time.
func (a *TokenAuth) Authenticate(token string) (*ClientInfo, error) {
	if !a.Enabled() {
		return &ClientInfo{Name: "anonymous"}, nil
	}
	if subtle.ConstantTimeCompare([]byte(token), a.token) == 1 {
		return &ClientInfo{Name: "token"}, nil
	}
	return nil, domain.ErrAuthInvalid
}

// requestToken reads the ?token= query parameter, which browsers use for
// websockets, or the bearer token.
func requestToken(r *http.Request) string {
	if t := r.URL.Query().Get("token"); t != "" {
		return t
	}
	t, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return t
}
