package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Remote asks an external policy service.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote returns an evaluator posting to url.
func NewRemote(url string, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{url: url, client: client}
}

// Evaluate implements Evaluator. Transport failures are errors, which the
// caller treats as a denial.
func (r *Remote) Evaluate(ctx context.Context, req Request) (Decision, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Decision{}, fmt.Errorf("encode policy request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return Decision{}, fmt.Errorf("policy request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return Decision{}, fmt.Errorf("policy request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Decision{}, fmt.Errorf("policy response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Decision{}, fmt.Errorf("policy service returned %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	var d Decision
	if err := json.Unmarshal(data, &d); err != nil {
		return Decision{}, fmt.Errorf("decode policy response: %w", err)
	}
	return d, nil
}
