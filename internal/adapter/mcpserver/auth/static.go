package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"arr-mcp/internal/infra/config"
)

// StaticVerifier accepts a fixed set of bearer tokens.
type StaticVerifier struct {
	tokens   []config.StaticToken
	required []string
}

// NewStaticVerifier returns a verifier for tokens. Every token must carry
// the required scopes to be accepted.
func NewStaticVerifier(tokens []config.StaticToken, required []string) (*StaticVerifier, error) {
	if len(tokens) == 0 {
		return nil, configError("static auth requires at least one token")
	}
	for i, t := range tokens {
		if t.Token == "" {
			return nil, configError(fmt.Sprintf("static token %d is empty", i))
		}
	}
	return &StaticVerifier{tokens: tokens, required: required}, nil
}

// Verify implements Verifier. Tokens are compared in constant time.
func (v *StaticVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	for _, t := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(t.Token), []byte(token)) != 1 {
			continue
		}
		p := &Principal{ClientID: t.ClientID, Scopes: t.Scopes}
		if !p.HasScopes(v.required) {
			return nil, fmt.Errorf("%w: missing required scopes", ErrUnauthorized)
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown token", ErrUnauthorized)
}
