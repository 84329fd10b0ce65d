package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
)

// conversation is a history with one completed tool round trip
func conversation() llm.ChatRequest {
	return llm.ChatRequest{
		Model:  "m1",
		System: "be brief",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "open camera"},
			{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{
				{ID: "call-1", Name: "open_app", Arguments: map[string]any{"app": "camera"}},
				{ID: "call-2", Name: "screenshot"},
			}},
			{Role: llm.RoleTool, ToolCallID: "call-1", Name: "open_app", Content: "opened"},
			{Role: llm.RoleTool, ToolCallID: "call-2", Content: "png"},
		},
		Tools: []llm.Tool{{Name: "open_app", Description: "Open an app", Parameters: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           map[string]any{"app": map[string]any{"type": "string"}},
		}}},
	}
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body []byte)) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		handler(w, r, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIChat(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		assert.Equal(t, "system", gjson.GetBytes(body, "messages.0.role").String())
		assert.Equal(t, "be brief", gjson.GetBytes(body, "messages.0.content").String())
		assert.Equal(t, gjson.Null, gjson.GetBytes(body, "messages.2.content").Type)
		assert.Equal(t, "function", gjson.GetBytes(body, "messages.2.tool_calls.0.type").String())
		assert.Equal(t, `{"app":"camera"}`, gjson.GetBytes(body, "messages.2.tool_calls.0.function.arguments").String())
		assert.Equal(t, "{}", gjson.GetBytes(body, "messages.2.tool_calls.1.function.arguments").String())
		assert.Equal(t, "call-1", gjson.GetBytes(body, "messages.3.tool_call_id").String())
		assert.Equal(t, "open_app", gjson.GetBytes(body, "tools.0.function.name").String())

		_, _ = w.Write([]byte(`{
			"choices": [{
				"message": {"content": null, "tool_calls": [
					{"id": "c9", "type": "function", "function": {"name": "tap", "arguments": "{\"x\": 3}"}},
					{"id": "", "type": "function", "function": {"name": "type", "arguments": "not json"}}
				]},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4}
		}`))
	})

	p := NewOpenAI(ProviderConfig{APIKey: "sk-test", BaseURL: srv.URL}, logger.NewNoopLogger())
	resp, err := p.Chat(context.Background(), conversation())

	require.NoError(t, err)
	assert.Equal(t, "tool_calls", resp.FinishReason)
	require.Len(t, resp.ToolCalls, 2)
	assert.Equal(t, map[string]any{"x": float64(3)}, resp.ToolCalls[0].Arguments)
	assert.NotEmpty(t, resp.ToolCalls[1].ID)
	assert.Equal(t, map[string]any{"_raw": "not json"}, resp.ToolCalls[1].Arguments)
	assert.Equal(t, llm.Usage{InputTokens: 12, OutputTokens: 4}, resp.Usage)
}

func TestClaudeChat(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		assert.Equal(t, "be brief", gjson.GetBytes(body, "system").String())
		assert.Equal(t, int64(4096), gjson.GetBytes(body, "max_tokens").Int())
		assert.Equal(t, int64(3), gjson.GetBytes(body, "messages.#").Int())
		assert.Equal(t, "tool_use", gjson.GetBytes(body, "messages.1.content.0.type").String())
		assert.True(t, gjson.GetBytes(body, "messages.1.content.1.input").IsObject())
		assert.Equal(t, int64(2), gjson.GetBytes(body, "messages.2.content.#").Int())
		assert.Equal(t, "call-2", gjson.GetBytes(body, "messages.2.content.1.tool_use_id").String())
		assert.True(t, gjson.GetBytes(body, "tools.0.input_schema").IsObject())

		_, _ = w.Write([]byte(`{
			"content": [
				{"type": "text", "text": "Taking "},
				{"type": "text", "text": "a photo"},
				{"type": "tool_use", "id": "tu_1", "name": "tap", "input": {"x": 1}}
			],
			"stop_reason": "tool_use",
			"usage": {"input_tokens": 20, "output_tokens": 7}
		}`))
	})

	p := NewClaude(ProviderConfig{APIKey: "key", BaseURL: srv.URL}, logger.NewNoopLogger())
	resp, err := p.Chat(context.Background(), conversation())

	require.NoError(t, err)
	assert.Equal(t, "Taking a photo", resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "tu_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "tool_use", resp.FinishReason)
}

func TestClaudeMessagesSkipBlankText(t *testing.T) {
	msgs := claudeMessages([]llm.Message{
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "  ", ToolCalls: []llm.ToolCall{{ID: "c1", Name: "tap"}}},
		{Role: llm.RoleTool, ToolCallID: "c1", Content: "done"},
		{Role: llm.RoleUser, Content: ""},
		{Role: llm.RoleAssistant, Content: ""},
		{Role: llm.RoleUser, Content: "next"},
	})

	require.Len(t, msgs, 4)
	for _, m := range msgs {
		for _, b := range m.Content {
			if b.Type == "text" {
				assert.NotEmpty(t, strings.TrimSpace(b.Text))
			}
		}
	}
	require.Len(t, msgs[1].Content, 1)
	assert.Equal(t, "tool_use", msgs[1].Content[0].Type)
	assert.Equal(t, "next", msgs[3].Content[0].Text)
}

func TestGeminiChat(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1beta/models/m1:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))

		assert.Equal(t, "be brief", gjson.GetBytes(body, "systemInstruction.parts.0.text").String())
		assert.Equal(t, "model", gjson.GetBytes(body, "contents.1.role").String())
		assert.Equal(t, "open_app", gjson.GetBytes(body, "contents.1.parts.0.functionCall.name").String())
		assert.Equal(t, "user", gjson.GetBytes(body, "contents.2.role").String())
		assert.Equal(t, "screenshot", gjson.GetBytes(body, "contents.2.parts.1.functionResponse.name").String())
		assert.Equal(t, "png", gjson.GetBytes(body, "contents.2.parts.1.functionResponse.response.content").String())
		assert.False(t, gjson.GetBytes(body, "tools.0.functionDeclarations.0.parameters.additionalProperties").Exists())

		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "ok"},
					{"functionCall": {"name": "tap", "args": {"x": 5}}}
				]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 9, "candidatesTokenCount": 2}
		}`))
	})

	p := NewGemini(ProviderConfig{APIKey: "g-key", BaseURL: srv.URL}, logger.NewNoopLogger())
	resp, err := p.Chat(context.Background(), conversation())

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.NotEmpty(t, resp.ToolCalls[0].ID)
	assert.Equal(t, map[string]any{"x": float64(5)}, resp.ToolCalls[0].Arguments)
	assert.Equal(t, llm.Usage{InputTokens: 9, OutputTokens: 2}, resp.Usage)
}

func TestGeminiRetryWithoutTools(t *testing.T) {
	t.Run("400 about function calling", func(t *testing.T) {
		var bodies [][]byte
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
			bodies = append(bodies, body)
			if len(bodies) == 1 {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "Function calling is not enabled for this model"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "plain"}]}, "finishReason": "STOP"}]}`))
		})

		p := NewGemini(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		resp, err := p.Chat(context.Background(), conversation())

		require.NoError(t, err)
		assert.Equal(t, "plain", resp.Content)
		require.Len(t, bodies, 2)
		assert.False(t, gjson.GetBytes(bodies[1], "tools").Exists())
		assert.False(t, gjson.GetBytes(bodies[1], "contents.1.parts.0.functionCall").Exists())
		assert.Contains(t, gjson.GetBytes(bodies[1], "contents.1.parts.0.text").String(), "[called tool open_app")
		assert.Contains(t, gjson.GetBytes(bodies[1], "contents.2.parts.0.text").String(), "[tool open_app result]: opened")
	})

	t.Run("Malformed function call", func(t *testing.T) {
		calls := 0
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
			calls++
			if calls == 1 {
				_, _ = w.Write([]byte(`{"candidates": [{"finishReason": "MALFORMED_FUNCTION_CALL"}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "done"}]}, "finishReason": "STOP"}]}`))
		})

		p := NewGemini(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		resp, err := p.Chat(context.Background(), conversation())

		require.NoError(t, err)
		assert.Equal(t, "done", resp.Content)
		assert.Equal(t, 2, calls)
	})

	t.Run("Other 400 is not retried", func(t *testing.T) {
		calls := 0
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
		})

		p := NewGemini(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		_, err := p.Chat(context.Background(), conversation())

		var pe *errs.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "API key not valid", pe.Message)
		assert.Equal(t, 1, calls)
	})
}

func TestProviderErrors(t *testing.T) {
	t.Run("Status mapped to provider error", func(t *testing.T) {
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "Rate limit reached"}})
		})

		p := NewOpenAI(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		_, err := p.Chat(context.Background(), llm.ChatRequest{Model: "m", Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}}})

		var pe *errs.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 429, pe.Status)
		assert.Equal(t, "Rate limit reached", pe.Message)
		assert.Contains(t, errs.UserMessage(err), "rate limit")
	})

	t.Run("Plain text body", func(t *testing.T) {
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})

		p := NewClaude(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		_, err := p.Chat(context.Background(), llm.ChatRequest{Model: "m"})

		assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
		assert.Contains(t, err.Error(), "upstream down")
	})

	t.Run("Transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		p := NewOpenAI(ProviderConfig{APIKey: "k", BaseURL: srv.URL}, logger.NewNoopLogger())
		_, err := p.Chat(context.Background(), llm.ChatRequest{Model: "m"})

		assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
	})
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Config{
		OpenAI: ProviderConfig{APIKey: "k", Model: "gpt-4o"},
		Gemini: ProviderConfig{APIKey: "g", Model: "gemini-1.5-pro"},
	}, logger.NewNoopLogger())

	assert.Equal(t, []string{"gemini", "openai"}, r.Names())
	assert.Equal(t, "gpt-4o", r.DefaultModel("openai"))

	p, err := r.Get("gemini")
	require.NoError(t, err)
	assert.Equal(t, GeminiName, p.Name())

	_, err = r.Get("claude")
	assert.ErrorIs(t, err, errs.ErrUnknownProvider)
}
