package domain

import (
	"fmt"
	"sync"
)

// RunUsage is the usage ledger of one top-level run. It is shared by
// pointer with every nested delegation so that usage accumulates across the
// whole task tree. Safe for concurrent use.
type RunUsage struct {
	mu           sync.Mutex
	requests     int
	toolCalls    int
	inputTokens  int
	outputTokens int
	totalTokens  int
}

// UsageSnapshot is a point-in-time copy of a RunUsage.
type UsageSnapshot struct {
	Requests     int `json:"requests"`
	ToolCalls    int `json:"tool_calls"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// NewRunUsage returns an empty ledger.
func NewRunUsage() *RunUsage { return &RunUsage{} }

// AddRequest records one model request and its token usage.
func (u *RunUsage) AddRequest(usage Usage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.requests++
	u.inputTokens += usage.PromptTokens
	u.outputTokens += usage.CompletionTokens
	total := usage.TotalTokens
	if total == 0 {
		total = usage.PromptTokens + usage.CompletionTokens
	}
	u.totalTokens += total
}

// AddToolCalls records n executed tool calls.
func (u *RunUsage) AddToolCalls(n int) {
	u.mu.Lock()
	u.toolCalls += n
	u.mu.Unlock()
}

// Snapshot returns the current counters.
func (u *RunUsage) Snapshot() UsageSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return UsageSnapshot{
		Requests:     u.requests,
		ToolCalls:    u.toolCalls,
		InputTokens:  u.inputTokens,
		OutputTokens: u.outputTokens,
		TotalTokens:  u.totalTokens,
	}
}

// UsageLimits bounds a run. Zero fields are unlimited.
type UsageLimits struct {
	RequestLimit     int `json:"request_limit" yaml:"request_limit"`
	TotalTokensLimit int `json:"total_tokens_limit" yaml:"total_tokens_limit"`
}

// CheckBeforeRequest returns ErrUsageLimit when one more request would exceed the limits.
func (l UsageLimits) CheckBeforeRequest(u *RunUsage) error {
	if u == nil {
		return nil
	}
	s := u.Snapshot()
	if l.RequestLimit > 0 && s.Requests+1 > l.RequestLimit {
		return fmt.Errorf("%w: next request would exceed the request_limit of %d", ErrUsageLimit, l.RequestLimit)
	}
	if l.TotalTokensLimit > 0 && s.TotalTokens > l.TotalTokensLimit {
		return fmt.Errorf("%w: total_tokens %d exceeds limit of %d", ErrUsageLimit, s.TotalTokens, l.TotalTokensLimit)
	}
	return nil
}

// RunContext carries the shared usage ledger and the caller's opaque
// dependency bag through a run and all of its delegations.
type RunContext struct {
	RunID  string
	Usage  *RunUsage
	Limits UsageLimits
	Deps   any
}
