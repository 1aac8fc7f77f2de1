package usecase

import (
	"time"

	"arr-mcp/internal/domain"
)

// missingResultText replaces the result of a tool call that never answered,
// e.g. when an AG-UI client replays a transcript cut mid-step.
const missingResultText = "[error] tool call did not produce a result"

// RepairTranscript returns a copy of messages in which every assistant tool
// call is followed by its result and no tool result lacks its call. Missing
// results are injected in call order; orphaned results are dropped.
func RepairTranscript(messages []domain.Message) []domain.Message {
	if len(messages) == 0 {
		return messages
	}

	result := make([]domain.Message, 0, len(messages))
	var pending []domain.ToolCall

	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleAssistant:
			result = appendMissing(result, pending)
			pending = pending[:0]
			for _, tc := range msg.ToolCalls {
				if tc.ID != "" {
					pending = append(pending, tc)
				}
			}
			result = append(result, msg)

		case domain.RoleTool:
			idx := pendingIndex(pending, resultCallID(msg))
			if idx < 0 {
				continue
			}
			pending = append(pending[:idx], pending[idx+1:]...)
			result = append(result, msg)

		default:
			result = appendMissing(result, pending)
			pending = pending[:0]
			result = append(result, msg)
		}
	}
	return appendMissing(result, pending)
}

func appendMissing(msgs []domain.Message, pending []domain.ToolCall) []domain.Message {
	for _, tc := range pending {
		msgs = append(msgs, domain.Message{
			Role:      domain.RoleTool,
			Name:      tc.Name,
			Content:   missingResultText,
			ToolCalls: []domain.ToolCall{{ID: tc.ID, Name: tc.Name}},
			Timestamp: time.Now(),
		})
	}
	return msgs
}

func pendingIndex(pending []domain.ToolCall, id string) int {
	if id == "" {
		return -1
	}
	for i, tc := range pending {
		if tc.ID == id {
			return i
		}
	}
	return -1
}

// resultCallID returns the call a tool result answers.
func resultCallID(msg domain.Message) string {
	if len(msg.ToolCalls) > 0 {
		return msg.ToolCalls[0].ID
	}
	return ""
}
