package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Category sentinels. Use with NewSubSystemError for subsystem-specific errors.
var (
	ErrNotFound         = fmt.Errorf("not found")
	ErrDuplicate        = fmt.Errorf("duplicate")
	ErrTimeout          = fmt.Errorf("operation timed out")
	ErrLimitReached     = fmt.Errorf("limit reached")
	ErrPermissionDenied = fmt.Errorf("permission denied")
	ErrInvalidInput     = fmt.Errorf("invalid input")
	ErrProviderError    = fmt.Errorf("provider error")
)

// Sentinel errors for the domain layer.
var (
	ErrProviderNotFound = fmt.Errorf("llm provider not found")
	ErrToolNotFound     = fmt.Errorf("tool not found")
	ErrMaxIterations    = fmt.Errorf("agent reached max iterations")
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrConfigLoad       = fmt.Errorf("failed to load configuration")
	ErrDecryption       = fmt.Errorf("decryption failed")
	ErrEncryption       = fmt.Errorf("encryption operation failed")

	// Delegation protocol errors.
	ErrUnknownTag        = fmt.Errorf("unknown tag")
	ErrUnknownService    = fmt.Errorf("unknown service")
	ErrDelegation        = fmt.Errorf("delegation failed")
	ErrToolTimeout       = fmt.Errorf("tool call timed out: %w", ErrTimeout)
	ErrUsageLimit        = fmt.Errorf("usage limit exceeded")
	ErrInvalidTransition = fmt.Errorf("invalid turn transition")

	// Backend REST errors.
	ErrBackendHTTP = fmt.Errorf("backend http error")

	// Gateway / RPC errors.
	ErrRPCMethodNotFound = fmt.Errorf("rpc method not found")
	ErrRPCInvalidPayload = fmt.Errorf("rpc payload invalid")
	ErrPolicyDenied      = fmt.Errorf("access denied by policy")

	// Resilience errors.
	ErrContextOverflow = fmt.Errorf("context window exceeded")
	ErrRateLimit       = fmt.Errorf("rate limit exceeded")
	ErrAuthInvalid     = fmt.Errorf("authentication failed")
	ErrToolFailure     = fmt.Errorf("tool execution failed")
	ErrCircuitOpen     = fmt.Errorf("circuit breaker open")
)

// BackendError is returned when a wrapped REST API answers with status >= 400.
// Status and Body are reported verbatim.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return "API error: " + strconv.Itoa(e.Status) + " - " + e.Body
}

// Is makes errors.Is(err, ErrBackendHTTP) true for any BackendError.
func (e *BackendError) Is(target error) bool { return target == ErrBackendHTTP }

// DomainError wraps a sentinel error with context.
type DomainError struct {
	Op        string // operation name (e.g., "Broker.Delegate")
	Err       error  // underlying sentinel or wrapped error
	Detail    string // human-readable detail
	SubSystem string // subsystem identifier (e.g., "broker", "mcp"); used for ErrorCode dispatch
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail}
}

// NewSubSystemError creates a DomainError tagged with a subsystem for ErrorCode dispatch.
func NewSubSystemError(subsystem, op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail, SubSystem: subsystem}
}

// WrapOp adds operation context to an error using fmt.Errorf wrapping.
// Returns nil if err is nil, enabling idiomatic use: return domain.WrapOp("op", err)
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsRetryableError reports whether err is a transient error that may succeed on retry.
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrRateLimit) || errors.Is(err, ErrContextOverflow)
}

// ErrorCode is a machine-parseable error category for monitoring and alerting.
type ErrorCode string

const (
	CodeUnknown           ErrorCode = "UNKNOWN"
	CodeProviderNotFound  ErrorCode = "PROVIDER_NOT_FOUND"
	CodeToolNotFound      ErrorCode = "TOOL_NOT_FOUND"
	CodeToolFailure       ErrorCode = "TOOL_FAILURE"
	CodeToolTimeout       ErrorCode = "TOOL_TIMEOUT"
	CodeMaxIterations     ErrorCode = "MAX_ITERATIONS"
	CodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	CodeConfigLoad        ErrorCode = "CONFIG_LOAD"
	CodeEncryption        ErrorCode = "ENCRYPTION"
	CodeDecryption        ErrorCode = "DECRYPTION"
	CodeUnknownTag        ErrorCode = "UNKNOWN_TAG"
	CodeUnknownService    ErrorCode = "UNKNOWN_SERVICE"
	CodeDelegation        ErrorCode = "DELEGATION"
	CodeUsageLimit        ErrorCode = "USAGE_LIMIT"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	CodeBackendHTTP       ErrorCode = "BACKEND_HTTP"
	CodeRPCMethodNotFound ErrorCode = "RPC_METHOD_NOT_FOUND"
	CodeRPCInvalidPayload ErrorCode = "RPC_INVALID_PAYLOAD"
	CodePolicyDenied      ErrorCode = "POLICY_DENIED"
	CodeContextOverflow   ErrorCode = "CONTEXT_OVERFLOW"
	CodeRateLimit         ErrorCode = "RATE_LIMIT"
	CodeAuthInvalid       ErrorCode = "AUTH_INVALID"
	CodeCircuitOpen       ErrorCode = "CIRCUIT_OPEN"

	// Subsystem-specific codes used by subSystemCodeMap.
	CodeAgentNotFound   ErrorCode = "AGENT_NOT_FOUND"
	CodeAgentDuplicate  ErrorCode = "AGENT_DUPLICATE"
	CodeTaskNotFound    ErrorCode = "TASK_NOT_FOUND"
	CodeRunNotFound     ErrorCode = "RUN_NOT_FOUND"
	CodeSkillNotFound   ErrorCode = "SKILL_NOT_FOUND"
	CodeMCPServerConfig ErrorCode = "MCP_SERVER_CONFIG"
	CodeAuthConfig      ErrorCode = "AUTH_CONFIG"

	// Category error codes, used when no subsystem-specific code matches.
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeDuplicate        ErrorCode = "DUPLICATE"
	CodeTimeout          ErrorCode = "TIMEOUT"
	CodeLimitReached     ErrorCode = "LIMIT_REACHED"
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeProviderError    ErrorCode = "PROVIDER_ERROR"
)

// errorCodeMap maps sentinel errors to their machine-parseable codes.
var errorCodeMap = map[error]ErrorCode{
	ErrNotFound:         CodeNotFound,
	ErrDuplicate:        CodeDuplicate,
	ErrTimeout:          CodeTimeout,
	ErrLimitReached:     CodeLimitReached,
	ErrPermissionDenied: CodePermissionDenied,
	ErrInvalidInput:     CodeInvalidInput,
	ErrProviderError:    CodeProviderError,

	ErrProviderNotFound:  CodeProviderNotFound,
	ErrToolNotFound:      CodeToolNotFound,
	ErrToolFailure:       CodeToolFailure,
	ErrToolTimeout:       CodeToolTimeout,
	ErrMaxIterations:     CodeMaxIterations,
	ErrSessionNotFound:   CodeSessionNotFound,
	ErrConfigLoad:        CodeConfigLoad,
	ErrDecryption:        CodeDecryption,
	ErrEncryption:        CodeEncryption,
	ErrUnknownTag:        CodeUnknownTag,
	ErrUnknownService:    CodeUnknownService,
	ErrDelegation:        CodeDelegation,
	ErrUsageLimit:        CodeUsageLimit,
	ErrInvalidTransition: CodeInvalidTransition,
	ErrBackendHTTP:       CodeBackendHTTP,
	ErrRPCMethodNotFound: CodeRPCMethodNotFound,
	ErrRPCInvalidPayload: CodeRPCInvalidPayload,
	ErrPolicyDenied:      CodePolicyDenied,
	ErrContextOverflow:   CodeContextOverflow,
	ErrRateLimit:         CodeRateLimit,
	ErrAuthInvalid:       CodeAuthInvalid,
	ErrCircuitOpen:       CodeCircuitOpen,
}

// precedence lists sentinels checked first when walking an error chain, so
// that specific kinds win over the categories they wrap.
var precedence = []error{
	ErrToolTimeout,
	ErrBackendHTTP,
	ErrUsageLimit,
	ErrUnknownTag,
	ErrPolicyDenied,
	ErrCircuitOpen,
}

// subSystemCodeMap maps (category sentinel, subsystem) pairs to specific ErrorCodes.
var subSystemCodeMap = map[error]map[string]ErrorCode{
	ErrNotFound: {
		"agent": CodeAgentNotFound,
		"task":  CodeTaskNotFound,
		"run":   CodeRunNotFound,
		"skill": CodeSkillNotFound,
	},
	ErrDuplicate: {
		"agent": CodeAgentDuplicate,
	},
	ErrInvalidInput: {
		"mcp":  CodeMCPServerConfig,
		"auth": CodeAuthConfig,
	},
}

// ErrorCodeOf returns the machine-parseable error code for the given error.
// It unwraps DomainError and uses errors.Is to match sentinel errors.
// Returns CodeUnknown if no matching sentinel is found.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	if code, ok := errorCodeMap[err]; ok {
		return code
	}

	var de *DomainError
	if errors.As(err, &de) {
		if code := de.Code(); code != CodeUnknown {
			return code
		}
	}

	for _, sentinel := range precedence {
		if errors.Is(err, sentinel) {
			return errorCodeMap[sentinel]
		}
	}
	for sentinel, code := range errorCodeMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return CodeUnknown
}

// Code returns the ErrorCode for this DomainError's underlying sentinel.
// If SubSystem is set, checks the subSystemCodeMap for a specific code.
func (e *DomainError) Code() ErrorCode {
	if e.SubSystem != "" {
		if subsysMap, ok := subSystemCodeMap[e.Err]; ok {
			if code, ok := subsysMap[e.SubSystem]; ok {
				return code
			}
		}
	}
	if code, ok := errorCodeMap[e.Err]; ok {
		return code
	}
	return CodeUnknown
}
