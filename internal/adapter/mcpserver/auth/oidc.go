package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Discovery is the subset of an OpenID provider configuration document
// this server uses.
type Discovery struct {
	Issuer                string `json:"issuer"`
	JWKSURI               string `json:"jwks_uri"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
}

// FetchDiscovery loads the discovery document at configURL.
func FetchDiscovery(ctx context.Context, client *http.Client, configURL string) (*Discovery, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, configURL, nil)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oidc discovery: %s returned %d", configURL, resp.StatusCode)
	}
	var d Discovery
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("oidc discovery: decode: %w", err)
	}
	if d.Issuer == "" || d.JWKSURI == "" {
		return nil, configError("oidc discovery document lacks issuer or jwks_uri")
	}
	return &d, nil
}
