package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
)

func TestGeminiChat(t *testing.T) {
	c := &capture{}
	srv := jsonServer(t, c, http.StatusOK, map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role": "model",
				"parts": []any{
					map[string]any{"functionCall": map[string]any{"name": "get_indexers", "args": map[string]any{"id": 2}}},
				},
			},
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 7, "candidatesTokenCount": 2, "totalTokenCount": 9},
	})

	p := NewGeminiProvider(Options{BaseURL: srv.URL, Model: "gemini-2.5-flash", APIKey: "g"}, newTestLogger())
	resp, err := p.Chat(context.Background(), domain.ChatRequest{
		Messages: conversation(),
		Tools:    tools(),
		Settings: domain.ModelSettings{MaxTokens: 100, Temperature: 0.2},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", c.path)
	assert.Equal(t, "g", c.header.Get("x-goog-api-key"))
	assert.NotContains(t, c.query, "key=")

	body := c.Body()
	gen := body["generationConfig"].(map[string]any)
	assert.EqualValues(t, 100, gen["maxOutputTokens"])
	contents := body["contents"].([]any)
	require.Len(t, contents, 3)
	fr := contents[2].(map[string]any)["parts"].([]any)[0].(map[string]any)["functionResponse"].(map[string]any)
	assert.Equal(t, "get_indexers", fr["name"])

	require.Len(t, resp.Message.ToolCalls, 1)
	assert.True(t, strings.HasPrefix(resp.Message.ToolCalls[0].ID, "call_"))
	assert.JSONEq(t, `{"id":2}`, string(resp.Message.ToolCalls[0].Arguments))
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.Equal(t, 9, resp.Usage.TotalTokens)
}

func TestGeminiStreamNumbersCallsAcrossChunks(t *testing.T) {
	raw := `data: {"candidates":[{"content":{"parts":[{"text":"Sure"}]}}]}

data: {"candidates":[{"content":{"parts":[{"functionCall":{"name":"get_indexers","args":{}}}]}}]}

data: {"candidates":[{"content":{"parts":[{"functionCall":{"name":"get_health","args":{}}}]}}],"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":1,"totalTokenCount":4}}

`
	c := &capture{}
	srv := sseServer(t, c, raw)
	p := NewGeminiProvider(Options{BaseURL: srv.URL, Model: "gm", APIKey: "g"}, newTestLogger())

	ch, err := p.ChatStream(context.Background(), domain.ChatRequest{Messages: conversation()})
	require.NoError(t, err)
	content, calls, usage := drain(ch)

	assert.Equal(t, "alt=sse", c.query)
	assert.Equal(t, "Sure", content)
	require.Len(t, calls, 2)
	assert.Equal(t, "get_indexers", calls[0].Name)
	assert.Equal(t, "get_health", calls[1].Name)
	assert.NotEqual(t, calls[0].ID, calls[1].ID)
	require.NotNil(t, usage)
	assert.Equal(t, 4, usage.TotalTokens)
}
