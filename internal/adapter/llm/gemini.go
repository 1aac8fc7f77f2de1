package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/tracer"
)

// GeminiBaseURL is the public Gemini endpoint.
const GeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiProvider implements domain.LLMProvider for the Google Gemini API.
type GeminiProvider struct {
	name    string
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewGeminiProvider creates a provider for the Google Gemini API.
func NewGeminiProvider(opts Options, logger *slog.Logger) *GeminiProvider {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = GeminiBaseURL
	}
	name := opts.Name
	if name == "" {
		name = "google"
	}
	return &GeminiProvider{
		name:    name,
		model:   opts.Model,
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		client:  NewHTTPClient(opts),
		logger:  logger,
	}
}

// Name implements domain.LLMProvider.
func (p *GeminiProvider) Name() string { return p.name }

func (p *GeminiProvider) endpoint(model, method string, stream bool) string {
	q := url.Values{}
	if stream {
		q.Set("alt", "sse")
	}
	return fmt.Sprintf("%s/v1beta/models/%s:%s?%s", p.baseURL, url.PathEscape(model), method, q.Encode())
}

func (p *GeminiProvider) headers(settings domain.ModelSettings) map[string]string {
	return requestHeaders(settings, map[string]string{"x-goog-api-key": p.apiKey})
}

// Chat implements domain.LLMProvider.
func (p *GeminiProvider) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.model
	}
	ctx, span := startChatSpan(ctx, p.name, req.Model)
	defer span.End()

	body, err := marshalWithExtra(toGeminiRequest(req), req.Settings.ExtraBody)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := doJSONRequest(ctx, p.client, p.endpoint(req.Model, "generateContent", false), body, p.headers(req.Settings))
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	result := fromGeminiResponse(gemResp)
	result.Model = req.Model
	setUsageAttrs(span, result.Usage)
	tracer.SetOK(span)
	logChatCompleted(p.logger, p.name, result)
	return result, nil
}

// --- Gemini API wire types ---

type geminiRequest struct {
	Contents          []geminiContent  `json:"contents"`
	Tools             []geminiTool     `json:"tools,omitempty"`
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiGenConfig struct {
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	Seed             *int     `json:"seed,omitempty"`
	PresencePenalty  *float64 `json:"presencePenalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequencyPenalty,omitempty"`
	StopSequences    []string `json:"stopSequences,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text             string              `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall `json:"functionCall,omitempty"`
	FunctionResponse *geminiFuncResponse `json:"functionResponse,omitempty"`
}

type geminiFunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type geminiFuncResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFuncDecl `json:"functionDeclarations"`
}

type geminiFuncDecl struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Gemini does not assign call ids, so one is minted per function call.
func newCallID() string { return "call_" + ulid.Make().String() }

// ChatStream implements domain.StreamingLLMProvider.
func (p *GeminiProvider) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	if req.Model == "" {
		req.Model = p.model
	}

	body, err := marshalWithExtra(toGeminiRequest(req), req.Settings.ExtraBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpResp, err := doStreamRequest(ctx, p.client, p.endpoint(req.Model, "streamGenerateContent", true), body, p.headers(req.Settings))
	if err != nil {
		return nil, err
	}

	// Every chunk carries whole function calls. They are numbered across
	// chunks so each lands in its own slot.
	calls := 0
	return decodeEventStream(ctx, httpResp.Body, func(data []byte) (*domain.StreamDelta, error) {
		var chunk geminiResponse
		if err := json.Unmarshal(data, &chunk); err != nil {
			return nil, err
		}

		delta := &domain.StreamDelta{}
		if len(chunk.Candidates) > 0 {
			for _, part := range chunk.Candidates[0].Content.Parts {
				switch {
				case part.FunctionCall != nil:
					for len(delta.ToolCalls) < calls {
						delta.ToolCalls = append(delta.ToolCalls, domain.ToolCall{})
					}
					delta.ToolCalls = append(delta.ToolCalls, domain.ToolCall{
						ID:        newCallID(),
						Name:      part.FunctionCall.Name,
						Arguments: part.FunctionCall.Args,
					})
					calls++
				case part.Text != "":
					delta.Content += part.Text
				}
			}
		}
		if chunk.UsageMetadata != nil {
			delta.Usage = &domain.Usage{
				PromptTokens:     chunk.UsageMetadata.PromptTokenCount,
				CompletionTokens: chunk.UsageMetadata.CandidatesTokenCount,
				TotalTokens:      chunk.UsageMetadata.TotalTokenCount,
			}
		}
		return delta, nil
	}), nil
}

func toGeminiRequest(req domain.ChatRequest) geminiRequest {
	s := req.Settings
	gemReq := geminiRequest{
		GenerationConfig: &geminiGenConfig{
			MaxOutputTokens:  s.MaxTokens,
			Temperature:      floatPtr(s.Temperature, true),
			TopP:             floatPtr(s.TopP, false),
			Seed:             s.Seed,
			PresencePenalty:  floatPtr(s.PresencePenalty, false),
			FrequencyPenalty: floatPtr(s.FrequencyPenalty, false),
			StopSequences:    s.StopSequences,
		},
	}

	for _, m := range req.Messages {
		if m.Role == domain.RoleSystem {
			if gemReq.SystemInstruction == nil {
				gemReq.SystemInstruction = &geminiContent{}
			}
			gemReq.SystemInstruction.Parts = append(gemReq.SystemInstruction.Parts, geminiPart{Text: m.Content})
			continue
		}

		gc := geminiContent{Role: "user"}
		switch {
		case m.Role == domain.RoleTool:
			name := m.Name
			if name == "" && len(m.ToolCalls) > 0 {
				name = m.ToolCalls[0].Name
			}
			gc.Parts = []geminiPart{{
				FunctionResponse: &geminiFuncResponse{
					Name:     name,
					Response: map[string]any{"content": m.Content},
				},
			}}
		case len(m.ToolCalls) > 0:
			gc.Role = "model"
			if m.Content != "" {
				gc.Parts = append(gc.Parts, geminiPart{Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				args := tc.Arguments
				if len(args) == 0 {
					args = json.RawMessage(`{}`)
				}
				gc.Parts = append(gc.Parts, geminiPart{
					FunctionCall: &geminiFunctionCall{Name: tc.Name, Args: args},
				})
			}
		default:
			if m.Role == domain.RoleAssistant {
				gc.Role = "model"
			}
			gc.Parts = []geminiPart{{Text: m.Content}}
		}
		gemReq.Contents = append(gemReq.Contents, gc)
	}

	if len(req.Tools) > 0 {
		decls := make([]geminiFuncDecl, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, geminiFuncDecl{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			})
		}
		gemReq.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}
	return gemReq
}

func fromGeminiResponse(resp geminiResponse) *domain.ChatResponse {
	result := &domain.ChatResponse{CreatedAt: time.Now()}
	if resp.UsageMetadata != nil {
		result.Usage = domain.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	msg := domain.Message{Role: domain.RoleAssistant, Timestamp: result.CreatedAt}
	if len(resp.Candidates) > 0 {
		for _, part := range resp.Candidates[0].Content.Parts {
			switch {
			case part.FunctionCall != nil:
				msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
					ID:        newCallID(),
					Name:      part.FunctionCall.Name,
					Arguments: part.FunctionCall.Args,
				})
			case part.Text != "":
				msg.Content += part.Text
			}
		}
	}
	result.Message = msg
	return result
}
