package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// RFC 8693 identifiers.
const (
	grantTokenExchange    = "urn:ietf:params:oauth:grant-type:token-exchange"
	tokenTypeAccessToken  = "urn:ietf:params:oauth:token-type:access_token"
	defaultDelegatedScope = "api"
)

// ExchangeConfig configures a TokenExchanger.
type ExchangeConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Audience     string
	Scopes       []string
}

// TokenExchanger trades a caller's access token for one scoped to the
// backend. Results are cached per subject token until shortly before they
// expire.
type TokenExchanger struct {
	cfg    ExchangeConfig
	client *http.Client

	mu    sync.Mutex
	cache map[string]*oauth2.Token
}

// NewTokenExchanger creates an exchanger. Scopes default to "api".
func NewTokenExchanger(cfg ExchangeConfig, client *http.Client) *TokenExchanger {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{defaultDelegatedScope}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &TokenExchanger{cfg: cfg, client: client, cache: make(map[string]*oauth2.Token)}
}

// Exchange returns a delegated access token for subjectToken.
func (e *TokenExchanger) Exchange(ctx context.Context, subjectToken string) (string, error) {
	e.mu.Lock()
	if tok, ok := e.cache[subjectToken]; ok && tok.Expiry.After(time.Now().Add(30*time.Second)) {
		e.mu.Unlock()
		return tok.AccessToken, nil
	}
	e.mu.Unlock()

	cc := clientcredentials.Config{
		ClientID:     e.cfg.ClientID,
		ClientSecret: e.cfg.ClientSecret,
		TokenURL:     e.cfg.TokenURL,
		Scopes:       e.cfg.Scopes,
		AuthStyle:    oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"grant_type":           {grantTokenExchange},
			"subject_token":        {subjectToken},
			"subject_token_type":   {tokenTypeAccessToken},
			"requested_token_type": {tokenTypeAccessToken},
			"audience":             {e.cfg.Audience},
		},
	}
	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, e.client))
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}

	e.mu.Lock()
	now := time.Now()
	for k, t := range e.cache {
		if !t.Expiry.IsZero() && t.Expiry.Before(now) {
			delete(e.cache, k)
		}
	}
	if !tok.Expiry.IsZero() {
		e.cache[subjectToken] = tok
	}
	e.mu.Unlock()
	return tok.AccessToken, nil
}
