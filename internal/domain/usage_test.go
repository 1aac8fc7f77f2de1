package domain

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsageAccumulatesConcurrently(t *testing.T) {
	u := NewRunUsage()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u.AddRequest(Usage{PromptTokens: 3, CompletionTokens: 2})
			u.AddToolCalls(1)
		}()
	}
	wg.Wait()

	s := u.Snapshot()
	assert.Equal(t, 20, s.Requests)
	assert.Equal(t, 20, s.ToolCalls)
	assert.Equal(t, 60, s.InputTokens)
	assert.Equal(t, 40, s.OutputTokens)
	assert.Equal(t, 100, s.TotalTokens)
}

func TestRunUsageTotalFromProvider(t *testing.T) {
	u := NewRunUsage()
	u.AddRequest(Usage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 7})
	assert.Equal(t, 7, u.Snapshot().TotalTokens)
}

func TestUsageLimitsRequestLimit(t *testing.T) {
	u := NewRunUsage()
	limits := UsageLimits{RequestLimit: 2}

	require.NoError(t, limits.CheckBeforeRequest(u))
	u.AddRequest(Usage{})
	require.NoError(t, limits.CheckBeforeRequest(u))
	u.AddRequest(Usage{})

	err := limits.CheckBeforeRequest(u)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsageLimit))
}

func TestUsageLimitsTokens(t *testing.T) {
	u := NewRunUsage()
	u.AddRequest(Usage{TotalTokens: 500})
	assert.NoError(t, UsageLimits{TotalTokensLimit: 500}.CheckBeforeRequest(u))
	assert.ErrorIs(t, UsageLimits{TotalTokensLimit: 499}.CheckBeforeRequest(u), ErrUsageLimit)
}

func TestUsageLimitsZeroIsUnlimited(t *testing.T) {
	u := NewRunUsage()
	for range 1000 {
		u.AddRequest(Usage{TotalTokens: 1000})
	}
	assert.NoError(t, UsageLimits{}.CheckBeforeRequest(u))
	assert.NoError(t, UsageLimits{RequestLimit: 1}.CheckBeforeRequest(nil))
}
