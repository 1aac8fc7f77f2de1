package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/tracer"
)

const (
	defaultAnthropicVersion   = "2023-06-01"
	defaultAnthropicMaxTokens = 4096
	AnthropicBaseURL          = "https://api.anthropic.com"
)

// AnthropicProvider implements domain.LLMProvider for the Anthropic Messages API.
type AnthropicProvider struct {
	name    string
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	version string
}

// NewAnthropicProvider creates a provider for the Anthropic Messages API.
func NewAnthropicProvider(opts Options, logger *slog.Logger) *AnthropicProvider {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = AnthropicBaseURL
	}
	name := opts.Name
	if name == "" {
		name = "anthropic"
	}
	return &AnthropicProvider{
		name:    name,
		model:   opts.Model,
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		client:  NewHTTPClient(opts),
		logger:  logger,
		version: defaultAnthropicVersion,
	}
}

// Name implements domain.LLMProvider.
func (p *AnthropicProvider) Name() string { return p.name }

func (p *AnthropicProvider) headers(settings domain.ModelSettings) map[string]string {
	return requestHeaders(settings, map[string]string{
		"x-api-key":         p.apiKey,
		"anthropic-version": p.version,
	})
}

// Chat implements domain.LLMProvider.
func (p *AnthropicProvider) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.model
	}
	ctx, span := startChatSpan(ctx, p.name, req.Model)
	defer span.End()

	body, err := marshalWithExtra(toAnthropicRequest(req), req.Settings.ExtraBody)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := doJSONRequest(ctx, p.client, p.baseURL+"/v1/messages", body, p.headers(req.Settings))
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}

	var antResp anthropicResponse
	if err := json.Unmarshal(respBody, &antResp); err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	result := fromAnthropicResponse(antResp)
	setUsageAttrs(span, result.Usage)
	tracer.SetOK(span)
	logChatCompleted(p.logger, p.name, result)
	return result, nil
}

// --- Anthropic API wire types ---

type anthropicRequest struct {
	Model         string             `json:"model"`
	Messages      []anthropicMessage `json:"messages"`
	System        string             `json:"system,omitempty"`
	MaxTokens     int                `json:"max_tokens"`
	Temperature   *float64           `json:"temperature,omitempty"`
	TopP          *float64           `json:"top_p,omitempty"`
	StopSequences []string           `json:"stop_sequences,omitempty"`
	Tools         []anthropicTool    `json:"tools,omitempty"`
	ToolChoice    *anthropicChoice   `json:"tool_choice,omitempty"`
	Stream        bool               `json:"stream,omitempty"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Thinking  string          `json:"thinking,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

type anthropicChoice struct {
	Type                   string `json:"type"`
	DisableParallelToolUse bool   `json:"disable_parallel_tool_use,omitempty"`
}

type anthropicTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

type anthropicResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Type    string             `json:"type"`
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
	Usage   anthropicUsage     `json:"usage"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// --- Anthropic streaming wire types ---

type anthropicStreamEvent struct {
	Type         string             `json:"type"`
	Index        int                `json:"index"`
	Delta        json.RawMessage    `json:"delta,omitempty"`
	Usage        *anthropicUsage    `json:"usage,omitempty"`
	Message      *anthropicResponse `json:"message,omitempty"`
	ContentBlock *anthropicContent  `json:"content_block,omitempty"`
}

type anthropicDelta struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Thinking    string `json:"thinking"`
	PartialJSON string `json:"partial_json"`
}

// ChatStream implements domain.StreamingLLMProvider.
func (p *AnthropicProvider) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	if req.Model == "" {
		req.Model = p.model
	}
	antReq := toAnthropicRequest(req)
	antReq.Stream = true

	body, err := marshalWithExtra(antReq, req.Settings.ExtraBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpResp, err := doStreamRequest(ctx, p.client, p.baseURL+"/v1/messages", body, p.headers(req.Settings))
	if err != nil {
		return nil, err
	}
	return decodeEventStream(ctx, httpResp.Body, newAnthropicStreamParser().parse), nil
}

// anthropicStreamParser maps content block indices to tool call positions.
// The data payload carries the event type, so the "event:" lines are not
// needed.
type anthropicStreamParser struct {
	toolPos     map[int]int
	inputTokens int
}

func newAnthropicStreamParser() *anthropicStreamParser {
	return &anthropicStreamParser{toolPos: make(map[int]int)}
}

// toolDelta places tc at its position among the tool_use blocks.
func toolDelta(pos int, tc domain.ToolCall) *domain.StreamDelta {
	calls := make([]domain.ToolCall, pos+1)
	calls[pos] = tc
	return &domain.StreamDelta{ToolCalls: calls}
}

func (sp *anthropicStreamParser) parse(data []byte) (*domain.StreamDelta, error) {
	var evt anthropicStreamEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}

	switch evt.Type {
	case "message_start":
		if evt.Message != nil {
			sp.inputTokens = evt.Message.Usage.InputTokens
		}
		return nil, nil

	case "content_block_start":
		if evt.ContentBlock == nil || evt.ContentBlock.Type != "tool_use" {
			return nil, nil
		}
		pos := len(sp.toolPos)
		sp.toolPos[evt.Index] = pos
		return toolDelta(pos, domain.ToolCall{ID: evt.ContentBlock.ID, Name: evt.ContentBlock.Name}), nil

	case "content_block_delta":
		var d anthropicDelta
		if err := json.Unmarshal(evt.Delta, &d); err != nil {
			return nil, err
		}
		switch d.Type {
		case "text_delta":
			return &domain.StreamDelta{Content: d.Text}, nil
		case "thinking_delta":
			return &domain.StreamDelta{Thinking: d.Thinking}, nil
		case "input_json_delta":
			pos, ok := sp.toolPos[evt.Index]
			if !ok || d.PartialJSON == "" {
				return nil, nil
			}
			return toolDelta(pos, domain.ToolCall{Arguments: json.RawMessage(d.PartialJSON)}), nil
		}
		return nil, nil

	case "message_delta":
		if evt.Usage == nil {
			return nil, nil
		}
		return &domain.StreamDelta{Usage: &domain.Usage{
			PromptTokens:     sp.inputTokens,
			CompletionTokens: evt.Usage.OutputTokens,
			TotalTokens:      sp.inputTokens + evt.Usage.OutputTokens,
		}}, nil

	case "message_stop":
		return &domain.StreamDelta{Done: true}, nil
	}
	return nil, nil
}

func toAnthropicRequest(req domain.ChatRequest) anthropicRequest {
	s := req.Settings
	antReq := anthropicRequest{
		Model:         req.Model,
		MaxTokens:     s.MaxTokens,
		Temperature:   floatPtr(s.Temperature, true),
		StopSequences: s.StopSequences,
	}
	if antReq.MaxTokens <= 0 {
		antReq.MaxTokens = defaultAnthropicMaxTokens
	}
	if s.TopP > 0 && s.TopP < 1 {
		antReq.TopP = floatPtr(s.TopP, false)
	}

	for _, m := range req.Messages {
		if m.Role == domain.RoleSystem {
			if antReq.System != "" {
				antReq.System += "\n\n"
			}
			antReq.System += m.Content
			continue
		}

		if m.Role == domain.RoleTool {
			antReq.Messages = append(antReq.Messages, anthropicMessage{
				Role: "user",
				Content: []anthropicContent{{
					Type:      "tool_result",
					ToolUseID: toolCallID(m),
					Content:   m.Content,
				}},
			})
			continue
		}

		antMsg := anthropicMessage{Role: m.Role}
		if m.Thinking != "" {
			antMsg.Content = append(antMsg.Content, anthropicContent{Type: "thinking", Thinking: m.Thinking})
		}
		if len(m.ToolCalls) > 0 {
			if m.Content != "" {
				antMsg.Content = append(antMsg.Content, anthropicContent{Type: "text", Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				input := tc.Arguments
				if len(input) == 0 {
					input = json.RawMessage(`{}`)
				}
				antMsg.Content = append(antMsg.Content, anthropicContent{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: input,
				})
			}
		} else {
			antMsg.Content = append(antMsg.Content, anthropicContent{Type: "text", Text: m.Content})
		}
		antReq.Messages = append(antReq.Messages, antMsg)
	}

	for _, t := range req.Tools {
		antReq.Tools = append(antReq.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Parameters,
		})
	}
	if len(req.Tools) > 0 && !s.ParallelToolCalls {
		antReq.ToolChoice = &anthropicChoice{Type: "auto", DisableParallelToolUse: true}
	}
	return antReq
}

func toolCallID(m domain.Message) string {
	if len(m.ToolCalls) > 0 {
		return m.ToolCalls[0].ID
	}
	return ""
}

func fromAnthropicResponse(resp anthropicResponse) *domain.ChatResponse {
	result := &domain.ChatResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: domain.Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
		CreatedAt: time.Now(),
	}

	msg := domain.Message{Role: domain.RoleAssistant, Timestamp: result.CreatedAt}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			msg.Content += block.Text
		case "thinking":
			msg.Thinking = block.Thinking
		case "tool_use":
			msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: block.Input,
			})
		}
	}
	result.Message = msg
	return result
}
