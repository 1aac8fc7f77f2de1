package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func signHS256(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "alice",
		"iss":       "https://issuer.example",
		"aud":       "arr-mcp",
		"exp":       time.Now().Add(time.Hour).Unix(),
		"scope":     "read write",
		"client_id": "cli",
	}
}

func hsVerifier(required ...string) *JWTVerifier {
	return NewJWTVerifier(JWTOptions{
		Keyfunc:        HMACKeyfunc([]byte(testSecret)),
		Issuer:         "https://issuer.example",
		Audience:       "arr-mcp",
		Algorithms:     hmacAlgorithms,
		RequiredScopes: required,
	})
}

func TestStaticVerifier(t *testing.T) {
	v, err := NewStaticVerifier([]config.StaticToken{
		{Token: "abc", ClientID: "ops", Scopes: []string{"read"}},
	}, []string{"read"})
	require.NoError(t, err)

	p, err := v.Verify(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ops", p.Name())

	_, err = v.Verify(context.Background(), "abd")
	assert.True(t, IsUnauthorized(err))
}

func TestStaticVerifier_MissingScope(t *testing.T) {
	v, err := NewStaticVerifier([]config.StaticToken{{Token: "abc", ClientID: "ops"}}, []string{"admin"})
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStaticVerifier_RejectsEmpty(t *testing.T) {
	_, err := NewStaticVerifier(nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = NewStaticVerifier([]config.StaticToken{{ClientID: "x"}}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJWTVerifier_Valid(t *testing.T) {
	p, err := hsVerifier("read").Verify(context.Background(), signHS256(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Subject)
	assert.Equal(t, "cli", p.ClientID)
	assert.Equal(t, []string{"read", "write"}, p.Scopes)
	assert.Equal(t, "alice", p.Name())
}

func TestJWTVerifier_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(jwt.MapClaims)
	}{
		{"expired", func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() }},
		{"no expiry", func(c jwt.MapClaims) { delete(c, "exp") }},
		{"wrong issuer", func(c jwt.MapClaims) { c["iss"] = "https://evil.example" }},
		{"wrong audience", func(c jwt.MapClaims) { c["aud"] = "other" }},
		{"missing scope", func(c jwt.MapClaims) { c["scope"] = "write" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(claims)
			_, err := hsVerifier("read").Verify(context.Background(), signHS256(t, claims))
			assert.True(t, IsUnauthorized(err))
		})
	}
}

func TestJWTVerifier_BadSignature(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = hsVerifier().Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestScopesOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, scopesOf(jwt.MapClaims{"scp": []any{"a", "b"}}))
	assert.Equal(t, []string{"a"}, scopesOf(jwt.MapClaims{"scp": "a"}))
	assert.Nil(t, scopesOf(jwt.MapClaims{}))
}

func TestPublicKeyKeyfunc(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	kf, err := PublicKeyKeyfunc(pemKey)
	require.NoError(t, err)
	v := NewJWTVerifier(JWTOptions{Keyfunc: kf, Issuer: "https://issuer.example", Audience: "arr-mcp", Algorithms: []string{"RS256"}})

	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims()).SignedString(key)
	require.NoError(t, err)
	p, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Subject)

	_, err = PublicKeyKeyfunc("not a key")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AuthConfig
	}{
		{"unknown type", config.AuthConfig{Type: "kerberos"}},
		{"jwt without issuer", config.AuthConfig{Type: "jwt", Audience: "a", Secret: "s"}},
		{"jwt without key", config.AuthConfig{Type: "jwt", Issuer: "i", Audience: "a"}},
		{"hmac with jwks", config.AuthConfig{Type: "jwt", Issuer: "i", Audience: "a", Algorithm: "HS256", JWKSURI: "https://x/jwks"}},
		{"hmac without secret", config.AuthConfig{Type: "jwt", Issuer: "i", Audience: "a", Algorithm: "HS256"}},
		{"static without tokens", config.AuthConfig{Type: "static"}},
		{"oidc incomplete", config.AuthConfig{Type: "oidc-proxy", OIDCConfigURL: "https://x"}},
		{"remote without servers", config.AuthConfig{Type: "remote-oauth", RemoteBaseURL: "https://x"}},
		{"delegation without oidc", config.AuthConfig{Type: "none", Delegation: config.DelegationConfig{Enabled: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(context.Background(), tt.cfg, nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, domain.CodeAuthConfig, domain.ErrorCodeOf(err))
		})
	}
}

func TestNew_None(t *testing.T) {
	s, err := New(context.Background(), config.AuthConfig{}, nil, nil)
	require.NoError(t, err)
	assert.False(t, s.Enabled())
	assert.Equal(t, "none", s.Type)
}

func TestNew_JWTWithSecret(t *testing.T) {
	s, err := New(context.Background(), config.AuthConfig{
		Type: "jwt", Issuer: "https://issuer.example", Audience: "arr-mcp", Secret: testSecret,
	}, nil, nil)
	require.NoError(t, err)
	require.True(t, s.Enabled())

	p, err := s.Verifier.Verify(context.Background(), signHS256(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Subject)
}

func TestMiddleware(t *testing.T) {
	setup := &Setup{
		Type:     "jwt",
		Verifier: hsVerifier(),
		Metadata: NewProtectedResource("https://mcp.example/", []string{"https://idp.example"}, nil),
	}
	var seen *Principal
	h := setup.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}), "/health")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"),
		`resource_metadata="https://mcp.example/.well-known/oauth-protected-resource"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, seen)

	token := signHS256(t, validClaims())
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Subject)
	assert.Equal(t, token, seen.Token)
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := BearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "bearer  xyz ")
	tok, ok := BearerToken(r)
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	r.Header.Set("Authorization", "Basic xyz")
	_, ok = BearerToken(r)
	assert.False(t, ok)
}

func TestProtectedResource(t *testing.T) {
	m := NewProtectedResource("https://mcp.example", []string{"https://idp.example"}, []string{"read"})
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ProtectedResourcePath, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://mcp.example", got["resource"])
	assert.Equal(t, []any{"https://idp.example"}, got["authorization_servers"])
	assert.Equal(t, []any{"header"}, got["bearer_methods_supported"])
}

func TestFetchDiscovery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"issuer":"https://idp.example","jwks_uri":"https://idp.example/jwks","token_endpoint":"https://idp.example/token","authorization_endpoint":"https://idp.example/auth"}`))
	}))
	defer srv.Close()

	d, err := FetchDiscovery(context.Background(), srv.Client(), srv.URL+"/.well-known/openid-configuration")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example", d.Issuer)
	assert.Equal(t, "https://idp.example/token", d.TokenEndpoint)

	_, err = FetchDiscovery(context.Background(), srv.Client(), srv.URL+"/missing")
	assert.Error(t, err)
}

func TestOAuthProxy(t *testing.T) {
	var (
		mu   sync.Mutex
		form url.Values
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		mu.Lock()
		form = r.PostForm
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"up-token","token_type":"Bearer"}`))
	}))
	defer upstream.Close()

	p := NewOAuthProxy(ProxyConfig{
		BaseURL:          "https://mcp.example/",
		AuthorizationURL: "https://idp.example/authorize?prompt=login",
		TokenURL:         upstream.URL,
		ClientID:         "upstream-client",
		ClientSecret:     "upstream-secret",
		Scopes:           []string{"openid"},
	}, upstream.Client(), nil)
	mux := http.NewServeMux()
	p.Register(mux)

	t.Run("metadata", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, AuthorizationServerPath, nil))
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "https://mcp.example/token", got["token_endpoint"])
	})

	t.Run("authorize redirects upstream", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/authorize?client_id=mcp-client&redirect_uri=http://localhost:3000/cb&state=s1", nil))
		require.Equal(t, http.StatusFound, rec.Code)
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "idp.example", loc.Host)
		assert.Equal(t, "upstream-client", loc.Query().Get("client_id"))
		assert.Equal(t, "s1", loc.Query().Get("state"))
		assert.Equal(t, "login", loc.Query().Get("prompt"))
		assert.Equal(t, "openid", loc.Query().Get("scope"))
	})

	t.Run("authorize rejects foreign redirect", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/authorize?redirect_uri=https://evil.example/cb", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token adds upstream credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, TokenPath,
			strings.NewReader("grant_type=authorization_code&code=c1&client_id=mcp-client"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "up-token")
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "upstream-client", form.Get("client_id"))
		assert.Equal(t, "upstream-secret", form.Get("client_secret"))
		assert.Equal(t, "c1", form.Get("code"))
	})

	t.Run("register", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, RegisterPath,
			strings.NewReader(`{"redirect_uris":["http://127.0.0.1:9999/cb"],"client_name":"cli"}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"client_id":"upstream-client"`)
		assert.NotContains(t, rec.Body.String(), "upstream-secret")
	})
}

func TestOAuthProxy_RedirectPatterns(t *testing.T) {
	p := NewOAuthProxy(ProxyConfig{AllowedRedirectURIs: []string{"https://app.example/*"}}, nil, nil)
	assert.True(t, p.redirectAllowed("https://app.example/cb"))
	assert.False(t, p.redirectAllowed("https://other.example/cb"))
	assert.False(t, p.redirectAllowed("http://localhost/cb"))
	assert.False(t, p.redirectAllowed("::bad"))
}

func TestTokenExchanger(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = r.ParseForm()
		assert.Equal(t, grantTokenExchange, r.PostForm.Get("grant_type"))
		assert.Equal(t, "caller-token", r.PostForm.Get("subject_token"))
		assert.Equal(t, "sonarr-api", r.PostForm.Get("audience"))
		assert.Equal(t, "api", r.PostForm.Get("scope"))
		assert.Equal(t, "client", r.PostForm.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"delegated","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	ex := NewTokenExchanger(ExchangeConfig{
		TokenURL: srv.URL, ClientID: "client", ClientSecret: "secret", Audience: "sonarr-api",
	}, srv.Client())

	tok, err := ex.Exchange(context.Background(), "caller-token")
	require.NoError(t, err)
	assert.Equal(t, "delegated", tok)

	tok, err = ex.Exchange(context.Background(), "caller-token")
	require.NoError(t, err)
	assert.Equal(t, "delegated", tok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenExchanger_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	_, err := NewTokenExchanger(ExchangeConfig{TokenURL: srv.URL, Audience: "a"}, srv.Client()).
		Exchange(context.Background(), "t")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "token exchange")
}
