package usecase

import (
	"fmt"

	"arr-mcp/internal/domain"
)

// TokenCounter counts and truncates text in model tokens.
type TokenCounter interface {
	Count(s string) int
	Truncate(s string, max int) (string, int)
}

// PruneMessages returns a copy of msgs in which every message content
// longer than maxTokens is cut to maxTokens and marked. maxTokens <= 0
// disables pruning.
func PruneMessages(msgs []domain.Message, counter TokenCounter, maxTokens int) []domain.Message {
	if maxTokens <= 0 || counter == nil {
		return msgs
	}
	out := make([]domain.Message, len(msgs))
	for i, m := range msgs {
		out[i] = m
		if counter.Count(m.Content) <= maxTokens {
			continue
		}
		head, cut := counter.Truncate(m.Content, maxTokens)
		if cut > 0 {
			out[i].Content = head + fmt.Sprintf("\n\n[... %d tokens truncated ...]", cut)
		}
	}
	return out
}
