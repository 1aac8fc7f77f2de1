// Package tokenizer counts and truncates text in model tokens.
package tokenizer

import (
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "cl100k_base"

// charsPerToken is the estimate used when no BPE ranks are available.
const charsPerToken = 4

// Counter counts tokens with a tiktoken encoding. The encoding is loaded on
// first use; when it cannot be loaded (offline, unknown name) the counter
// falls back to a character-based estimate.
type Counter struct {
	name   string
	logger *slog.Logger
	once   sync.Once
	enc    *tiktoken.Tiktoken
}

// New creates a counter for the named encoding.
func New(encoding string, logger *slog.Logger) *Counter {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Counter{name: encoding, logger: logger}
}

// NewEstimator creates a counter that never loads an encoding.
func NewEstimator() *Counter {
	c := &Counter{}
	c.once.Do(func() {})
	return c
}

func (c *Counter) encoding() *tiktoken.Tiktoken {
	c.once.Do(func() {
		enc, err := tiktoken.GetEncoding(c.name)
		if err != nil {
			c.logger.Warn("tiktoken encoding unavailable, estimating token counts",
				"encoding", c.name, "error", err)
			return
		}
		c.enc = enc
	})
	return c.enc
}

// Count returns the number of tokens in s.
func (c *Counter) Count(s string) int {
	if s == "" {
		return 0
	}
	if enc := c.encoding(); enc != nil {
		return len(enc.Encode(s, nil, nil))
	}
	return (utf8.RuneCountInString(s) + charsPerToken - 1) / charsPerToken
}

// Truncate returns the longest prefix of s holding at most max tokens and
// the number of tokens cut.
func (c *Counter) Truncate(s string, max int) (string, int) {
	if max < 0 {
		max = 0
	}
	if enc := c.encoding(); enc != nil {
		tokens := enc.Encode(s, nil, nil)
		if len(tokens) <= max {
			return s, 0
		}
		return enc.Decode(tokens[:max]), len(tokens) - max
	}

	total := c.Count(s)
	if total <= max {
		return s, 0
	}
	keep := max * charsPerToken
	i := 0
	for pos := range s {
		if i == keep {
			return s[:pos], total - max
		}
		i++
	}
	return s, 0
}
