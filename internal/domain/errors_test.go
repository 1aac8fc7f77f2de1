package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorFormat(t *testing.T) {
	err := NewDomainError("Tool.Execute", ErrToolNotFound, "tool 'foo'")
	want := "Tool.Execute: tool 'foo': tool not found"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestDomainErrorFormatNoDetail(t *testing.T) {
	err := NewDomainError("Agent.Run", ErrMaxIterations, "")
	want := "Agent.Run: agent reached max iterations"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	err := NewDomainError("Broker.Delegate", ErrUnknownTag, "Weather")
	if !errors.Is(err, ErrUnknownTag) {
		t.Error("errors.Is should match ErrUnknownTag")
	}
}

func TestDomainErrorAs(t *testing.T) {
	err := NewDomainError("LLM.Chat", ErrProviderNotFound, "groq")
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatal("errors.As should match *DomainError")
	}
	if de.Op != "LLM.Chat" {
		t.Errorf("Op = %q, want %q", de.Op, "LLM.Chat")
	}
}

// --- ErrorCode tests ---

func TestErrorCodeOf_DirectSentinel(t *testing.T) {
	assert.Equal(t, CodeToolNotFound, ErrorCodeOf(ErrToolNotFound))
	assert.Equal(t, CodeSessionNotFound, ErrorCodeOf(ErrSessionNotFound))
	assert.Equal(t, CodeRateLimit, ErrorCodeOf(ErrRateLimit))
	assert.Equal(t, CodePolicyDenied, ErrorCodeOf(ErrPolicyDenied))
}

func TestErrorCodeOf_DomainError(t *testing.T) {
	err := NewDomainError("Tool.Execute", ErrToolNotFound, "tool 'foo'")
	assert.Equal(t, CodeToolNotFound, ErrorCodeOf(err))
}

func TestErrorCodeOf_WrappedError(t *testing.T) {
	// fmt.Errorf with %w wraps the sentinel.
	wrapped := fmt.Errorf("context: %w", ErrCircuitOpen)
	assert.Equal(t, CodeCircuitOpen, ErrorCodeOf(wrapped))
}

func TestErrorCodeOf_UnknownError(t *testing.T) {
	assert.Equal(t, CodeUnknown, ErrorCodeOf(fmt.Errorf("some random error")))
}

func TestErrorCodeOf_Nil(t *testing.T) {
	assert.Equal(t, CodeUnknown, ErrorCodeOf(nil))
}

func TestDomainError_Code(t *testing.T) {
	err := NewDomainError("Registry.Get", ErrUnknownService, "plex")
	assert.Equal(t, CodeUnknownService, err.Code())
}

func TestDomainError_CodeUnknownSentinel(t *testing.T) {
	err := NewDomainError("Op", fmt.Errorf("custom"), "detail")
	assert.Equal(t, CodeUnknown, err.Code())
}

func TestAllSentinelsHaveCodes(t *testing.T) {
	// Verify every sentinel in errorCodeMap maps to a non-empty code.
	require.NotEmpty(t, errorCodeMap)
	for sentinel, code := range errorCodeMap {
		assert.NotEmpty(t, code, "sentinel %v has empty code", sentinel)
		assert.NotEqual(t, CodeUnknown, code, "sentinel %v maps to UNKNOWN", sentinel)
	}
}

// --- NewSubSystemError tests ---

func TestNewSubSystemError_Format(t *testing.T) {
	err := NewSubSystemError("run", "Get", ErrNotFound, "run-123")
	// SubSystem is metadata, not included in Error() output.
	assert.Equal(t, "Get: run-123: not found", err.Error())
}

func TestNewSubSystemError_SubSystemField(t *testing.T) {
	err := NewSubSystemError("run", "Get", ErrNotFound, "run-123")
	assert.Equal(t, "run", err.SubSystem)
}

func TestNewSubSystemError_Unwrap(t *testing.T) {
	err := NewSubSystemError("broker", "Delegate", ErrTimeout, "")
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestNewSubSystemError_BackwardCompatible(t *testing.T) {
	// Zero-valued SubSystem for NewDomainError (no regression).
	err := NewDomainError("Op", ErrToolNotFound, "x")
	assert.Equal(t, "", err.SubSystem)
}

// --- Delegation sentinel tests ---

func TestToolTimeoutWrapsTimeout(t *testing.T) {
	assert.True(t, errors.Is(ErrToolTimeout, ErrTimeout))
	wrapped := fmt.Errorf("delegate to Indexer agent: %w", ErrToolTimeout)
	// The specific code wins over the category it wraps.
	assert.Equal(t, CodeToolTimeout, ErrorCodeOf(wrapped))
}

func TestBackendError(t *testing.T) {
	err := &BackendError{Status: 404, Body: "Not Found"}
	assert.Equal(t, "API error: 404 - Not Found", err.Error())
	assert.True(t, errors.Is(err, ErrBackendHTTP))

	wrapped := fmt.Errorf("delegate to Catalog agent: %w", err)
	var be *BackendError
	require.True(t, errors.As(wrapped, &be))
	assert.Equal(t, 404, be.Status)
	assert.Equal(t, CodeBackendHTTP, ErrorCodeOf(wrapped))
}

// --- SubSystem-aware ErrorCodeOf tests ---

func TestErrorCodeOf_SubSystemNotFound(t *testing.T) {
	err := NewSubSystemError("task", "Get", ErrNotFound, "task-abc")
	assert.Equal(t, CodeTaskNotFound, ErrorCodeOf(err))
}

func TestErrorCodeOf_SubSystemTimeout(t *testing.T) {
	err := NewSubSystemError("mcp", "LoadConfig", ErrInvalidInput, "missing command")
	assert.Equal(t, CodeMCPServerConfig, ErrorCodeOf(err))
}

func TestErrorCodeOf_SubSystemFallback(t *testing.T) {
	// Unknown subsystem falls back to category code.
	err := NewSubSystemError("unknown-subsystem", "Op", ErrNotFound, "")
	assert.Equal(t, CodeNotFound, ErrorCodeOf(err))
}

func TestErrorCodeOf_CategorySentinelDirect(t *testing.T) {
	// Direct category sentinel (not wrapped in DomainError) uses category code.
	assert.Equal(t, CodeNotFound, ErrorCodeOf(ErrNotFound))
	assert.Equal(t, CodeTimeout, ErrorCodeOf(ErrTimeout))
	assert.Equal(t, CodeDuplicate, ErrorCodeOf(ErrDuplicate))
}

func TestDomainError_CodeSubSystem(t *testing.T) {
	err := NewSubSystemError("agent", "Register", ErrDuplicate, "Prowlarr_Indexer_Agent")
	assert.Equal(t, CodeAgentDuplicate, err.Code())
}

func TestDomainError_CodeSubSystemFallback(t *testing.T) {
	err := NewSubSystemError("unknown", "Op", ErrTimeout, "")
	assert.Equal(t, CodeTimeout, err.Code())
}

// --- WrapOp tests ---

func TestWrapOp_Nil(t *testing.T) {
	assert.Nil(t, WrapOp("anything", nil))
}

func TestWrapOp_Format(t *testing.T) {
	err := WrapOp("Session.Load", ErrSessionNotFound)
	assert.Equal(t, "Session.Load: session not found", err.Error())
}

func TestWrapOp_PreservesIs(t *testing.T) {
	err := WrapOp("Session.Load", ErrSessionNotFound)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestWrapOp_PreservesErrorCode(t *testing.T) {
	err := WrapOp("Session.Load", ErrSessionNotFound)
	assert.Equal(t, CodeSessionNotFound, ErrorCodeOf(err))
}

func TestWrapOp_Chain(t *testing.T) {
	inner := WrapOp("inner", ErrToolFailure)
	outer := WrapOp("outer", inner)
	assert.Equal(t, "outer: inner: tool execution failed", outer.Error())
	assert.True(t, errors.Is(outer, ErrToolFailure))
}

// --- IsRetryableError tests ---

func TestIsRetryableError_RateLimit(t *testing.T) {
	assert.True(t, IsRetryableError(ErrRateLimit))
}

func TestIsRetryableError_ContextOverflow(t *testing.T) {
	assert.True(t, IsRetryableError(ErrContextOverflow))
}

func TestIsRetryableError_Wrapped(t *testing.T) {
	err := fmt.Errorf("llm call: %w", ErrRateLimit)
	assert.True(t, IsRetryableError(err))
}

func TestIsRetryableError_DomainError(t *testing.T) {
	err := NewDomainError("LLM.Chat", ErrRateLimit, "openai")
	assert.True(t, IsRetryableError(err))
}

func TestIsRetryableError_NotRetryable(t *testing.T) {
	assert.False(t, IsRetryableError(ErrToolNotFound))
	assert.False(t, IsRetryableError(ErrAuthInvalid))
	assert.False(t, IsRetryableError(fmt.Errorf("random error")))
}

func TestIsRetryableError_Nil(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
}
