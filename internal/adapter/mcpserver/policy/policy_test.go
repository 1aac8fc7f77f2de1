package policy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

const samplePolicy = `{
  "version": "1",
  "default_effect": "deny",
  "rules": [
    {"name": "no-deletes", "effect": "deny", "tools": ["delete_*"]},
    {"name": "admins", "effect": "allow", "principals": ["admin-*"], "tools": ["*"]},
    {"name": "readers", "effect": "allow", "principals": ["alice", "bob"], "tools": ["get_*", "list_*"]}
  ]
}`

func TestEmbedded_Evaluate(t *testing.T) {
	e, err := Parse([]byte(samplePolicy))
	require.NoError(t, err)

	tests := []struct {
		principal, tool string
		allowed         bool
	}{
		{"admin-1", "add_series", true},
		{"admin-1", "delete_series", false},
		{"alice", "get_series", true},
		{"alice", "add_series", false},
		{"mallory", "get_series", false},
	}
	for _, tt := range tests {
		t.Run(tt.principal+"/"+tt.tool, func(t *testing.T) {
			d, err := e.Evaluate(context.Background(), Request{Principal: tt.principal, Tool: tt.tool})
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, d.Allowed, d.Reason)
		})
	}
}

func TestEmbedded_DefaultAllow(t *testing.T) {
	e, err := Parse([]byte(`{"default_effect":"allow","rules":[]}`))
	require.NoError(t, err)
	d, err := e.Evaluate(context.Background(), Request{Principal: "x", Tool: "anything"})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"not json":      `{`,
		"missing rules": `{"default_effect":"deny"}`,
		"bad effect":    `{"rules":[{"name":"r","effect":"maybe","tools":["*"]}]}`,
		"no tools":      `{"rules":[{"name":"r","effect":"allow","tools":[]}]}`,
		"bad glob":      `{"rules":[{"name":"r","effect":"allow","tools":["[a"]}]}`,
		"bad default":   `{"default_effect":"sometimes","rules":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNew(t *testing.T) {
	ev, err := New(config.EunomiaConfig{Type: "none"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, ev)

	file := filepath.Join(t.TempDir(), "mcp_policies.json")
	require.NoError(t, os.WriteFile(file, []byte(samplePolicy), 0o600))
	ev, err = New(config.EunomiaConfig{Type: "embedded", PolicyFile: file}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &Embedded{}, ev)

	_, err = New(config.EunomiaConfig{Type: "embedded", PolicyFile: filepath.Join(t.TempDir(), "missing.json")}, nil, nil)
	assert.Error(t, err)

	_, err = New(config.EunomiaConfig{Type: "remote"}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New(config.EunomiaConfig{Type: "opa"}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		allowed := req.Principal == "alice" && req.Arguments["id"] == float64(7)
		_ = json.NewEncoder(w).Encode(Decision{Allowed: allowed, Reason: "checked " + req.Tool})
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, srv.Client())
	d, err := r.Evaluate(context.Background(), Request{Principal: "alice", Tool: "get_series", Arguments: map[string]any{"id": 7}})
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, "checked get_series", d.Reason)

	d, err = r.Evaluate(context.Background(), Request{Principal: "bob", Tool: "get_series"})
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestRemote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, srv.Client()).Evaluate(context.Background(), Request{Tool: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDenied(t *testing.T) {
	err := Denied(Request{Principal: "bob", Tool: "delete_series"}, Decision{})
	assert.ErrorIs(t, err, domain.ErrPolicyDenied)
	assert.Contains(t, err.Error(), "access denied by policy")

	err = Denied(Request{}, Decision{Reason: "rule x"})
	assert.Equal(t, "access denied by policy: rule x", err.Error())
}
