package usecase

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"arr-mcp/internal/domain"
)

// ErrorCategory indicates whether a model call error is worth retrying.
type ErrorCategory int

const (
	ErrorCategoryUnknown   ErrorCategory = iota
	ErrorCategoryRetryable               // 429, 5xx, connection errors, context overflow
	ErrorCategoryPermanent               // 401, 403, 400 (non-overflow), open circuit
)

// ClassifiedError holds the result of error classification.
type ClassifiedError struct {
	Original   error
	Category   ErrorCategory
	Sentinel   error // mapped domain sentinel, or nil
	StatusCode int   // extracted HTTP status, or 0 if unknown
}

// ErrorClassifier sorts LLM provider errors into retryable and permanent.
// Backend and delegation errors never reach it: they abort the run.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new classifier.
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// apiErrorPattern matches "API error <status_code>:" produced by the LLM providers.
var apiErrorPattern = regexp.MustCompile(`API error (\d+):`)

// sentinelCategories is checked in order; the first match wins.
var sentinelCategories = []struct {
	sentinel error
	category ErrorCategory
}{
	{domain.ErrCircuitOpen, ErrorCategoryPermanent},
	{domain.ErrAuthInvalid, ErrorCategoryPermanent},
	{domain.ErrUsageLimit, ErrorCategoryPermanent},
	{domain.ErrRateLimit, ErrorCategoryRetryable},
	{domain.ErrContextOverflow, ErrorCategoryRetryable},
	{domain.ErrProviderError, ErrorCategoryRetryable},
}

var (
	rateLimitPhrases = []string{"rate limit", "too many requests"}
	overflowPhrases  = []string{"context length", "token limit", "maximum context"}
	transientPhrases = []string{"connection refused", "no such host", "timeout", "deadline exceeded", "connection reset", "eof"}
	// overflowKeywords mark a 400 body as a context length problem.
	overflowKeywords = []string{"context", "token", "length", "too long", "maximum"}
)

// Classify inspects err and returns its category and mapped sentinel.
func (c *ErrorClassifier) Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}
	for _, sc := range sentinelCategories {
		if errors.Is(err, sc.sentinel) {
			return ClassifiedError{Original: err, Category: sc.category, Sentinel: sc.sentinel, StatusCode: statusOf(err)}
		}
	}

	msg := err.Error()
	if code := statusOf(err); code != 0 {
		return classifyStatus(err, code, msg)
	}

	lower := strings.ToLower(msg)
	switch {
	case containsAny(lower, rateLimitPhrases):
		return ClassifiedError{Original: err, Category: ErrorCategoryRetryable, Sentinel: domain.ErrRateLimit}
	case containsAny(lower, overflowPhrases):
		return ClassifiedError{Original: err, Category: ErrorCategoryRetryable, Sentinel: domain.ErrContextOverflow}
	case containsAny(lower, transientPhrases):
		return ClassifiedError{Original: err, Category: ErrorCategoryRetryable}
	}
	return ClassifiedError{Original: err, Category: ErrorCategoryUnknown}
}

func classifyStatus(err error, code int, body string) ClassifiedError {
	out := ClassifiedError{Original: err, Category: ErrorCategoryPermanent, StatusCode: code}
	switch {
	case code == 429:
		out.Category, out.Sentinel = ErrorCategoryRetryable, domain.ErrRateLimit
	case code == 401 || code == 403:
		out.Sentinel = domain.ErrAuthInvalid
	case code == 413:
		out.Category, out.Sentinel = ErrorCategoryRetryable, domain.ErrContextOverflow
	case code == 400 && containsAny(strings.ToLower(body), overflowKeywords):
		out.Category, out.Sentinel = ErrorCategoryRetryable, domain.ErrContextOverflow
	case code >= 500 && code < 600:
		out.Category = ErrorCategoryRetryable
	}
	return out
}

func statusOf(err error) int {
	m := apiErrorPattern.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	code, _ := strconv.Atoi(m[1])
	return code
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
