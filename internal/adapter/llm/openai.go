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

// Default endpoints of the OpenAI-compatible providers.
const (
	OpenAIBaseURL      = "https://api.openai.com/v1"
	HuggingFaceBaseURL = "https://router.huggingface.co/v1"
)

// OpenAIProvider implements domain.LLMProvider for any OpenAI-compatible
// chat completions API. The same type serves LM Studio, Ollama's /v1 shim
// and the Hugging Face router.
type OpenAIProvider struct {
	name    string
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenAIProvider creates a provider. An empty base URL means the public
// OpenAI endpoint.
func NewOpenAIProvider(opts Options, logger *slog.Logger) *OpenAIProvider {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = OpenAIBaseURL
	}
	name := opts.Name
	if name == "" {
		name = "openai"
	}
	return &OpenAIProvider{
		name:    name,
		model:   opts.Model,
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		client:  NewHTTPClient(opts),
		logger:  logger,
	}
}

// NewHuggingFaceProvider creates an OpenAI-compatible provider pointed at
// the Hugging Face inference router unless opts names another base URL.
func NewHuggingFaceProvider(opts Options, logger *slog.Logger) *OpenAIProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = HuggingFaceBaseURL
	}
	if opts.Name == "" {
		opts.Name = "huggingface"
	}
	return NewOpenAIProvider(opts, logger)
}

// Name implements domain.LLMProvider.
func (p *OpenAIProvider) Name() string { return p.name }

// Model returns the default model id.
func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) headers(settings domain.ModelSettings) map[string]string {
	auth := map[string]string{}
	if p.apiKey != "" {
		auth["Authorization"] = "Bearer " + p.apiKey
	}
	return requestHeaders(settings, auth)
}

// Chat implements domain.LLMProvider.
func (p *OpenAIProvider) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.model
	}
	ctx, span := startChatSpan(ctx, p.name, req.Model)
	defer span.End()

	body, err := marshalWithExtra(toOpenAIRequest(req), req.Settings.ExtraBody)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := doJSONRequest(ctx, p.client, p.baseURL+"/chat/completions", body, p.headers(req.Settings))
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}

	var oaiResp openaiResponse
	if err := json.Unmarshal(respBody, &oaiResp); err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	result := fromOpenAIResponse(oaiResp)
	setUsageAttrs(span, result.Usage)
	tracer.SetOK(span)
	logChatCompleted(p.logger, p.name, result)
	return result, nil
}

// --- OpenAI API wire types ---

type openaiRequest struct {
	Model             string          `json:"model"`
	Messages          []openaiMessage `json:"messages"`
	Tools             []openaiTool    `json:"tools,omitempty"`
	MaxTokens         int             `json:"max_tokens,omitempty"`
	Temperature       *float64        `json:"temperature,omitempty"`
	TopP              *float64        `json:"top_p,omitempty"`
	Seed              *int            `json:"seed,omitempty"`
	PresencePenalty   *float64        `json:"presence_penalty,omitempty"`
	FrequencyPenalty  *float64        `json:"frequency_penalty,omitempty"`
	LogitBias         map[string]int  `json:"logit_bias,omitempty"`
	Stop              []string        `json:"stop,omitempty"`
	ParallelToolCalls *bool           `json:"parallel_tool_calls,omitempty"`
	Stream            bool            `json:"stream,omitempty"`
	StreamOptions     *streamOptions  `json:"stream_options,omitempty"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type openaiMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content,omitempty"`
	Name       string           `json:"name,omitempty"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openaiTool struct {
	Type     string             `json:"type"`
	Function openaiToolFunction `json:"function"`
}

type openaiToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type openaiToolCall struct {
	Index    *int                   `json:"index,omitempty"`
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Function openaiToolCallFunction `json:"function"`
}

type openaiToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openaiResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
	Created int64          `json:"created"`
}

type openaiChoice struct {
	Index        int           `json:"index"`
	Message      openaiMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openaiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func toOpenAIRequest(req domain.ChatRequest) openaiRequest {
	msgs := make([]openaiMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		oaiMsg := openaiMessage{
			Role:    m.Role,
			Content: m.Content,
			Name:    m.Name,
		}
		// Tool results carry their call id in ToolCalls[0].
		if m.Role == domain.RoleTool && len(m.ToolCalls) > 0 {
			oaiMsg.ToolCallID = m.ToolCalls[0].ID
			oaiMsg.Name = ""
		}
		if len(m.ToolCalls) > 0 && m.Role != domain.RoleTool {
			oaiMsg.ToolCalls = make([]openaiToolCall, len(m.ToolCalls))
			for i, tc := range m.ToolCalls {
				oaiMsg.ToolCalls[i] = openaiToolCall{
					ID:   tc.ID,
					Type: "function",
					Function: openaiToolCallFunction{
						Name:      tc.Name,
						Arguments: string(tc.Arguments),
					},
				}
			}
		}
		msgs = append(msgs, oaiMsg)
	}

	s := req.Settings
	oaiReq := openaiRequest{
		Model:            req.Model,
		Messages:         msgs,
		Stream:           req.Stream,
		MaxTokens:        s.MaxTokens,
		Temperature:      floatPtr(s.Temperature, true),
		TopP:             floatPtr(s.TopP, false),
		Seed:             s.Seed,
		PresencePenalty:  floatPtr(s.PresencePenalty, false),
		FrequencyPenalty: floatPtr(s.FrequencyPenalty, false),
		LogitBias:        s.LogitBias,
		Stop:             s.StopSequences,
	}
	if req.Stream {
		oaiReq.StreamOptions = &streamOptions{IncludeUsage: true}
	}

	if len(req.Tools) > 0 {
		oaiReq.Tools = make([]openaiTool, len(req.Tools))
		for i, t := range req.Tools {
			oaiReq.Tools[i] = openaiTool{
				Type: "function",
				Function: openaiToolFunction{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  t.Parameters,
				},
			}
		}
		// Only meaningful when tools are sent; some servers reject it otherwise.
		// False is sent explicitly since servers default to parallel.
		parallel := s.ParallelToolCalls
		oaiReq.ParallelToolCalls = &parallel
	}
	return oaiReq
}

// floatPtr returns nil for zero unless keepZero is set, so the server's own
// default applies.
func floatPtr(v float64, keepZero bool) *float64 {
	if v == 0 && !keepZero {
		return nil
	}
	return &v
}

// --- OpenAI streaming wire types ---

type openaiStreamChunk struct {
	ID      string               `json:"id"`
	Choices []openaiStreamChoice `json:"choices"`
	Usage   *openaiUsage         `json:"usage,omitempty"`
}

type openaiStreamChoice struct {
	Delta        openaiStreamDelta `json:"delta"`
	FinishReason *string           `json:"finish_reason"`
}

type openaiStreamDelta struct {
	Content   string           `json:"content,omitempty"`
	ToolCalls []openaiToolCall `json:"tool_calls,omitempty"`
}

// ChatStream implements domain.StreamingLLMProvider. The stream ends at
// the [DONE] sentinel so the trailing usage chunk is not lost.
func (p *OpenAIProvider) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	if req.Model == "" {
		req.Model = p.model
	}
	req.Stream = true

	body, err := marshalWithExtra(toOpenAIRequest(req), req.Settings.ExtraBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpResp, err := doStreamRequest(ctx, p.client, p.baseURL+"/chat/completions", body, p.headers(req.Settings))
	if err != nil {
		return nil, err
	}
	return decodeEventStream(ctx, httpResp.Body, parseOpenAIChunk), nil
}

// parseOpenAIChunk converts one SSE payload. Tool call fragments are placed
// at their stream index so consumers can merge them by position.
func parseOpenAIChunk(data []byte) (*domain.StreamDelta, error) {
	var chunk openaiStreamChunk
	if err := json.Unmarshal(data, &chunk); err != nil {
		return nil, err
	}

	delta := &domain.StreamDelta{}
	if len(chunk.Choices) > 0 {
		c := chunk.Choices[0]
		delta.Content = c.Delta.Content
		for pos, tc := range c.Delta.ToolCalls {
			idx := pos
			if tc.Index != nil && *tc.Index >= 0 {
				idx = *tc.Index
			}
			for len(delta.ToolCalls) <= idx {
				delta.ToolCalls = append(delta.ToolCalls, domain.ToolCall{})
			}
			delta.ToolCalls[idx] = domain.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			}
		}
	}
	if chunk.Usage != nil {
		delta.Usage = &domain.Usage{
			PromptTokens:     chunk.Usage.PromptTokens,
			CompletionTokens: chunk.Usage.CompletionTokens,
			TotalTokens:      chunk.Usage.TotalTokens,
		}
	}
	return delta, nil
}

func fromOpenAIResponse(resp openaiResponse) *domain.ChatResponse {
	result := &domain.ChatResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: domain.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		CreatedAt: time.Unix(resp.Created, 0),
	}
	if len(resp.Choices) == 0 {
		return result
	}

	choice := resp.Choices[0]
	msg := domain.Message{
		Role:      choice.Message.Role,
		Content:   choice.Message.Content,
		Name:      choice.Message.Name,
		Timestamp: result.CreatedAt,
	}
	if msg.Role == "" {
		msg.Role = domain.RoleAssistant
	}
	if len(choice.Message.ToolCalls) > 0 {
		msg.ToolCalls = make([]domain.ToolCall, len(choice.Message.ToolCalls))
		for i, tc := range choice.Message.ToolCalls {
			msg.ToolCalls[i] = domain.ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			}
		}
	}
	result.Message = msg
	return result
}
