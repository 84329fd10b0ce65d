package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

const openAIBaseURL = "https://api.openai.com"

// OpenAI talks to the chat completions API
type OpenAI struct {
	http httpClient
	cfg  ProviderConfig
}

// NewOpenAI creates an OpenAI adapter
func NewOpenAI(cfg ProviderConfig, logger coreport.Logger) *OpenAI {
	return &OpenAI{http: newHTTPClient(OpenAIName, cfg, openAIBaseURL, logger), cfg: cfg}
}

func (p *OpenAI) Name() string { return OpenAIName }

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Tools       []openAITool    `json:"tools,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAIToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openAITool struct {
	Type     string            `json:"type"`
	Function openAIFunctionDef `json:"function"`
}

type openAIFunctionDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content   *string          `json:"content"`
			ToolCalls []openAIToolCall `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Chat sends the conversation to /v1/chat/completions
func (p *OpenAI) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.cfg.Model
	}
	body := openAIRequest{
		Model:       req.Model,
		Messages:    openAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, openAITool{
			Type:     "function",
			Function: openAIFunctionDef{Name: t.Name, Description: t.Description, Parameters: t.Parameters},
		})
	}

	data, err := p.http.postJSON(ctx, p.http.baseURL+"/v1/chat/completions", map[string]string{
		"Authorization": "Bearer " + p.cfg.APIKey,
	}, body)
	if err != nil {
		return nil, err
	}

	var resp openAIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	out := &llm.ChatResponse{
		Usage: llm.Usage{InputTokens: resp.Usage.PromptTokens, OutputTokens: resp.Usage.CompletionTokens},
	}
	if len(resp.Choices) == 0 {
		return out, nil
	}
	choice := resp.Choices[0]
	out.FinishReason = choice.FinishReason
	if choice.Message.Content != nil {
		out.Content = *choice.Message.Content
	}
	for _, c := range choice.Message.ToolCalls {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		out.ToolCalls = append(out.ToolCalls, llm.ToolCall{ID: id, Name: c.Function.Name, Arguments: parseArguments(c.Function.Arguments)})
	}
	return out, nil
}

func openAIMessages(req llm.ChatRequest) []openAIMessage {
	msgs := make([]openAIMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openAIMessage{Role: "system", Content: strPtr(req.System)})
	}
	for _, m := range req.Messages {
		switch m.Role {
		case llm.RoleTool:
			msgs = append(msgs, openAIMessage{Role: "tool", Content: strPtr(m.Content), ToolCallID: m.ToolCallID})
		case llm.RoleAssistant:
			msg := openAIMessage{Role: "assistant"}
			if m.Content != "" || len(m.ToolCalls) == 0 {
				msg.Content = strPtr(m.Content)
			}
			for _, c := range m.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, openAIToolCall{
					ID:       c.ID,
					Type:     "function",
					Function: openAIFunction{Name: c.Name, Arguments: argumentsJSON(c.Arguments)},
				})
			}
			msgs = append(msgs, msg)
		default:
			msgs = append(msgs, openAIMessage{Role: "user", Content: strPtr(m.Content)})
		}
	}
	return msgs
}

func strPtr(s string) *string { return &s }
