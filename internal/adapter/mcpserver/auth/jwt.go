package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"arr-mcp/internal/infra/config"
)

var (
	hmacAlgorithms       = []string{"HS256", "HS384", "HS512"}
	asymmetricAlgorithms = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512", "ES256", "ES384", "ES512", "EdDSA"}
)

// JWTOptions configures a JWTVerifier.
type JWTOptions struct {
	Keyfunc        jwt.Keyfunc
	Issuer         string
	Audience       string
	Algorithms     []string
	RequiredScopes []string
	Leeway         time.Duration
}

// JWTVerifier validates signed access tokens.
type JWTVerifier struct {
	keyfunc  jwt.Keyfunc
	parser   *jwt.Parser
	required []string
}

// NewJWTVerifier returns a verifier that checks signature, expiry, issuer,
// audience and scopes.
func NewJWTVerifier(opts JWTOptions) *JWTVerifier {
	algs := opts.Algorithms
	if len(algs) == 0 {
		algs = append(append([]string{}, hmacAlgorithms...), asymmetricAlgorithms...)
	}
	leeway := opts.Leeway
	if leeway == 0 {
		leeway = 30 * time.Second
	}
	popts := []jwt.ParserOption{
		jwt.WithValidMethods(algs),
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		popts = append(popts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		popts = append(popts, jwt.WithAudience(opts.Audience))
	}
	return &JWTVerifier{keyfunc: opts.Keyfunc, parser: jwt.NewParser(popts...), required: opts.RequiredScopes}
}

// Verify implements Verifier.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	claims := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.keyfunc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	p := &Principal{Claims: claims, Scopes: scopesOf(claims)}
	p.Subject, _ = claims.GetSubject()
	for _, key := range []string{"client_id", "azp", "cid"} {
		if s, ok := claims[key].(string); ok && s != "" {
			p.ClientID = s
			break
		}
	}
	if !p.HasScopes(v.required) {
		return nil, fmt.Errorf("%w: missing required scopes %v", ErrUnauthorized, v.required)
	}
	return p, nil
}

// scopesOf reads the space-separated "scope" claim or the "scp" claim,
// which providers send either as a list or as a string.
func scopesOf(claims jwt.MapClaims) []string {
	if s, ok := claims["scope"].(string); ok {
		return strings.Fields(s)
	}
	switch scp := claims["scp"].(type) {
	case string:
		return strings.Fields(scp)
	case []any:
		out := make([]string, 0, len(scp))
		for _, v := range scp {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// HMACKeyfunc verifies tokens signed with secret.
func HMACKeyfunc(secret []byte) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return secret, nil
	}
}

// PublicKeyKeyfunc verifies tokens against a PEM encoded RSA, ECDSA or
// Ed25519 public key.
func PublicKeyKeyfunc(pemKey string) (jwt.Keyfunc, error) {
	data := []byte(pemKey)
	var key any
	if k, err := jwt.ParseRSAPublicKeyFromPEM(data); err == nil {
		key = k
	} else if k, err := jwt.ParseECPublicKeyFromPEM(data); err == nil {
		key = k
	} else if k, err := jwt.ParseEdPublicKeyFromPEM(data); err == nil {
		key = k
	} else {
		return nil, configError("public_key is not a PEM encoded RSA, ECDSA or Ed25519 key")
	}
	return func(*jwt.Token) (any, error) { return key, nil }, nil
}

// JWKSKeyfunc fetches the key set at uri and keeps it refreshed until ctx
// ends.
func JWKSKeyfunc(ctx context.Context, uri string) (jwt.Keyfunc, error) {
	if uri == "" {
		return nil, configError("jwks_uri is empty")
	}
	k, err := keyfunc.NewDefaultCtx(ctx, []string{uri})
	if err != nil {
		return nil, fmt.Errorf("load jwks %s: %w", uri, err)
	}
	return k.Keyfunc, nil
}

// newConfiguredJWT builds the JWT verifier shared by the jwt, oauth-proxy
// and remote-oauth types.
func newConfiguredJWT(ctx context.Context, cfg config.AuthConfig) (*JWTVerifier, error) {
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, configError(fmt.Sprintf("auth type %s requires issuer and audience", cfg.Type))
	}
	alg := strings.ToUpper(cfg.Algorithm)
	if alg == "EDDSA" {
		alg = "EdDSA"
	}
	hmac := strings.HasPrefix(alg, "HS")

	var (
		kf   jwt.Keyfunc
		algs []string
		err  error
	)
	switch {
	case hmac && cfg.JWKSURI != "":
		return nil, configError("jwks_uri cannot be combined with an HMAC algorithm")
	case hmac || (cfg.Secret != "" && cfg.JWKSURI == "" && cfg.PublicKey == ""):
		if cfg.Secret == "" {
			return nil, configError("HMAC algorithms require a secret")
		}
		kf, algs = HMACKeyfunc([]byte(cfg.Secret)), hmacAlgorithms
	case cfg.JWKSURI != "":
		if kf, err = JWKSKeyfunc(ctx, cfg.JWKSURI); err != nil {
			return nil, err
		}
		algs = asymmetricAlgorithms
	case cfg.PublicKey != "":
		if kf, err = PublicKeyKeyfunc(cfg.PublicKey); err != nil {
			return nil, err
		}
		algs = asymmetricAlgorithms
	default:
		return nil, configError(fmt.Sprintf("auth type %s requires jwks_uri, secret or public_key", cfg.Type))
	}
	if alg != "" {
		algs = []string{alg}
	}

	return NewJWTVerifier(JWTOptions{
		Keyfunc:        kf,
		Issuer:         cfg.Issuer,
		Audience:       cfg.Audience,
		Algorithms:     algs,
		RequiredScopes: cfg.RequiredScopes,
	}), nil
}
