package usecase

import (
	"time"

	"arr-mcp/internal/domain"
)

// ContextBuilder constructs the prompt message array for LLM calls.
type ContextBuilder struct {
	systemPrompt string
	maxMessages  int
	model        string
}

// NewContextBuilder creates a new context builder. maxMessages <= 0 keeps
// the whole history.
func NewContextBuilder(systemPrompt, model string, maxMessages int) *ContextBuilder {
	return &ContextBuilder{
		systemPrompt: systemPrompt,
		model:        model,
		maxMessages:  maxMessages,
	}
}

// SystemPrompt returns the prompt placed first in every request.
func (cb *ContextBuilder) SystemPrompt() string { return cb.systemPrompt }

// Build assembles the system prompt and the repaired, truncated history.
func (cb *ContextBuilder) Build(history []domain.Message, tools []domain.ToolSchema) domain.ChatRequest {
	messages := make([]domain.Message, 0, 1+len(history))
	if cb.systemPrompt != "" {
		messages = append(messages, domain.Message{
			Role:      domain.RoleSystem,
			Content:   cb.systemPrompt,
			Timestamp: time.Now(),
		})
	}

	hist := RepairTranscript(history)
	hist = cb.truncateHistory(hist)
	messages = append(messages, hist...)

	return domain.ChatRequest{
		Model:    cb.model,
		Messages: messages,
		Tools:    tools,
	}
}

// truncateHistory keeps the newest messages within maxMessages. An
// assistant message with tool calls and its results are kept or dropped
// together.
func (cb *ContextBuilder) truncateHistory(history []domain.Message) []domain.Message {
	if cb.maxMessages <= 0 || len(history) <= cb.maxMessages {
		return history
	}

	groups := groupMessages(history)

	var kept [][]domain.Message
	total := 0
	for i := len(groups) - 1; i >= 0; i-- {
		n := len(groups[i])
		if total+n > cb.maxMessages && total > 0 {
			break
		}
		kept = append(kept, groups[i])
		total += n
	}

	result := make([]domain.Message, 0, total)
	for i := len(kept) - 1; i >= 0; i-- {
		result = append(result, kept[i]...)
	}
	return result
}

// groupMessages partitions msgs into atomic groups.
func groupMessages(msgs []domain.Message) [][]domain.Message {
	var groups [][]domain.Message
	i := 0
	for i < len(msgs) {
		msg := msgs[i]
		if msg.Role == domain.RoleAssistant && len(msg.ToolCalls) > 0 {
			group := []domain.Message{msg}
			j := i + 1
			for j < len(msgs) && msgs[j].Role == domain.RoleTool {
				group = append(group, msgs[j])
				j++
			}
			groups = append(groups, group)
			i = j
			continue
		}
		groups = append(groups, []domain.Message{msg})
		i++
	}
	return groups
}
