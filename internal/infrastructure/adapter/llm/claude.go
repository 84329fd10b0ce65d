package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

const (
	claudeBaseURL    = "https://api.anthropic.com"
	claudeAPIVersion = "2023-06-01"

	// DefaultClaudeMaxTokens is sent when the request does not set a limit
	DefaultClaudeMaxTokens = 4096
)

// Claude talks to the Anthropic messages API
type Claude struct {
	http httpClient
	cfg  ProviderConfig
}

// NewClaude creates a Claude adapter
func NewClaude(cfg ProviderConfig, logger coreport.Logger) *Claude {
	return &Claude{http: newHTTPClient(ClaudeName, cfg, claudeBaseURL, logger), cfg: cfg}
}

func (p *Claude) Name() string { return ClaudeName }

type claudeRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
	Tools       []claudeTool    `json:"tools,omitempty"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type claudeMessage struct {
	Role    string        `json:"role"`
	Content []claudeBlock `json:"content"`
}

type claudeBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

type claudeTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

type claudeResponse struct {
	Content    []claudeBlock `json:"content"`
	StopReason string        `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// MarshalJSON keeps an empty input object on tool_use blocks
func (b claudeBlock) MarshalJSON() ([]byte, error) {
	type plain claudeBlock
	if b.Type != "tool_use" {
		return json.Marshal(plain(b))
	}
	input := b.Input
	if input == nil {
		input = map[string]any{}
	}
	return json.Marshal(struct {
		Type  string         `json:"type"`
		ID    string         `json:"id"`
		Name  string         `json:"name"`
		Input map[string]any `json:"input"`
	}{b.Type, b.ID, b.Name, input})
}

// Chat sends the conversation to /v1/messages
func (p *Claude) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.cfg.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultClaudeMaxTokens
	}
	body := claudeRequest{
		Model:       req.Model,
		System:      req.System,
		Messages:    claudeMessages(req.Messages),
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}
	for _, t := range req.Tools {
		schema := t.Parameters
		if schema == nil {
			schema = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		body.Tools = append(body.Tools, claudeTool{Name: t.Name, Description: t.Description, InputSchema: schema})
	}

	data, err := p.http.postJSON(ctx, p.http.baseURL+"/v1/messages", map[string]string{
		"x-api-key":         p.cfg.APIKey,
		"anthropic-version": claudeAPIVersion,
	}, body)
	if err != nil {
		return nil, err
	}

	var resp claudeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode claude response: %w", err)
	}
	out := &llm.ChatResponse{
		FinishReason: resp.StopReason,
		Usage:        llm.Usage{InputTokens: resp.Usage.InputTokens, OutputTokens: resp.Usage.OutputTokens},
	}
	var text []string
	for _, b := range resp.Content {
		switch b.Type {
		case "text":
			text = append(text, b.Text)
		case "tool_use":
			args := b.Input
			if args == nil {
				args = map[string]any{}
			}
			out.ToolCalls = append(out.ToolCalls, llm.ToolCall{ID: b.ID, Name: b.Name, Arguments: args})
		}
	}
	out.Content = strings.Join(text, "")
	return out, nil
}

// claudeMessages converts the history. Consecutive tool results share one user message.
func claudeMessages(history []llm.Message) []claudeMessage {
	msgs := make([]claudeMessage, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case llm.RoleTool:
			block := claudeBlock{Type: "tool_result", ToolUseID: m.ToolCallID, Content: m.Content}
			if n := len(msgs); n > 0 && isToolResultTurn(msgs[n-1]) {
				msgs[n-1].Content = append(msgs[n-1].Content, block)
				continue
			}
			msgs = append(msgs, claudeMessage{Role: "user", Content: []claudeBlock{block}})
		case llm.RoleAssistant:
			var blocks []claudeBlock
			if strings.TrimSpace(m.Content) != "" {
				blocks = append(blocks, claudeBlock{Type: "text", Text: m.Content})
			}
			for _, c := range m.ToolCalls {
				blocks = append(blocks, claudeBlock{Type: "tool_use", ID: c.ID, Name: c.Name, Input: c.Arguments})
			}
			if len(blocks) == 0 {
				continue
			}
			msgs = append(msgs, claudeMessage{Role: "assistant", Content: blocks})
		default:
			// the API rejects blank text blocks
			if strings.TrimSpace(m.Content) == "" {
				continue
			}
			msgs = append(msgs, claudeMessage{Role: "user", Content: []claudeBlock{{Type: "text", Text: m.Content}}})
		}
	}
	return msgs
}

func isToolResultTurn(m claudeMessage) bool {
	if m.Role != "user" || len(m.Content) == 0 {
		return false
	}
	for _, b := range m.Content {
		if b.Type != "tool_result" {
			return false
		}
	}
	return true
}
