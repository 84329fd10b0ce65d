package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"

	// FinishMalformedFunctionCall is reported when Gemini produced an unusable function call
	FinishMalformedFunctionCall = "MALFORMED_FUNCTION_CALL"
)

// Gemini talks to the generateContent API
type Gemini struct {
	http   httpClient
	cfg    ProviderConfig
	logger coreport.Logger
}

// NewGemini creates a Gemini adapter
func NewGemini(cfg ProviderConfig, logger coreport.Logger) *Gemini {
	return &Gemini{http: newHTTPClient(GeminiName, cfg, geminiBaseURL, logger), cfg: cfg, logger: logger}
}

func (p *Gemini) Name() string { return GeminiName }

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	Tools             []geminiTool      `json:"tools,omitempty"`
	GenerationConfig  *geminiGeneration `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text             string                  `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResponse `json:"functionResponse,omitempty"`
}

type geminiFunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type geminiFunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFunctionDecl `json:"functionDeclarations"`
}

type geminiFunctionDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type geminiGeneration struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// Chat sends the conversation and retries once without tools when Gemini rejects function calling
func (p *Gemini) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if req.Model == "" {
		req.Model = p.cfg.Model
	}
	resp, err := p.generate(ctx, req, false)
	if len(req.Tools) == 0 || !needsToolFallback(resp, err) {
		return resp, err
	}

	fields := map[string]any{"model": req.Model}
	if err != nil {
		fields["error"] = err.Error()
	} else {
		fields["finish_reason"] = resp.FinishReason
	}
	p.logger.Warn("Gemini rejected tool use, retrying without tools", fields)

	req.Tools = nil
	return p.generate(ctx, req, true)
}

// needsToolFallback reports a 400 about function calling or a malformed function call
func needsToolFallback(resp *llm.ChatResponse, err error) bool {
	if err != nil {
		var pe *errs.ProviderError
		if !errors.As(err, &pe) || pe.Status != 400 {
			return false
		}
		msg := strings.ToLower(pe.Message)
		return strings.Contains(msg, "function") || strings.Contains(msg, "tool")
	}
	return resp != nil && resp.FinishReason == FinishMalformedFunctionCall
}

func (p *Gemini) generate(ctx context.Context, req llm.ChatRequest, flatten bool) (*llm.ChatResponse, error) {
	body := geminiRequest{Contents: geminiContents(req.Messages, flatten)}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if len(req.Tools) > 0 {
		decls := make([]geminiFunctionDecl, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, geminiFunctionDecl{Name: t.Name, Description: t.Description, Parameters: CleanSchema(t.Parameters)})
		}
		body.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}
	if req.MaxTokens > 0 || req.Temperature != nil {
		body.GenerationConfig = &geminiGeneration{MaxOutputTokens: req.MaxTokens, Temperature: req.Temperature}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.http.baseURL, url.PathEscape(req.Model), url.QueryEscape(p.cfg.APIKey))
	data, err := p.http.postJSON(ctx, endpoint, nil, body)
	if err != nil {
		return nil, err
	}
	return parseGeminiResponse(data), nil
}

func parseGeminiResponse(data []byte) *llm.ChatResponse {
	out := &llm.ChatResponse{
		FinishReason: gjson.GetBytes(data, "candidates.0.finishReason").String(),
		Usage: llm.Usage{
			InputTokens:  int(gjson.GetBytes(data, "usageMetadata.promptTokenCount").Int()),
			OutputTokens: int(gjson.GetBytes(data, "usageMetadata.candidatesTokenCount").Int()),
		},
	}
	if out.FinishReason == "" {
		out.FinishReason = gjson.GetBytes(data, "promptFeedback.blockReason").String()
	}

	var text strings.Builder
	gjson.GetBytes(data, "candidates.0.content.parts").ForEach(func(_, part gjson.Result) bool {
		if t := part.Get("text"); t.Exists() {
			text.WriteString(t.String())
		}
		if fc := part.Get("functionCall"); fc.Exists() {
			args, _ := fc.Get("args").Value().(map[string]any)
			if args == nil {
				args = map[string]any{}
			}
			out.ToolCalls = append(out.ToolCalls, llm.ToolCall{
				ID:        uuid.NewString(),
				Name:      fc.Get("name").String(),
				Arguments: args,
			})
		}
		return true
	})
	out.Content = text.String()
	return out
}

// geminiContents converts the history. Same-role turns are merged and tool results recover their
// function name from the matching call. With flatten set, calls and results become plain text.
func geminiContents(history []llm.Message, flatten bool) []geminiContent {
	callNames := make(map[string]string)
	contents := make([]geminiContent, 0, len(history))
	add := func(role string, parts ...geminiPart) {
		if len(parts) == 0 {
			return
		}
		if n := len(contents); n > 0 && contents[n-1].Role == role {
			contents[n-1].Parts = append(contents[n-1].Parts, parts...)
			return
		}
		contents = append(contents, geminiContent{Role: role, Parts: parts})
	}

	for _, m := range history {
		switch m.Role {
		case llm.RoleAssistant:
			var parts []geminiPart
			if m.Content != "" {
				parts = append(parts, geminiPart{Text: m.Content})
			}
			for _, c := range m.ToolCalls {
				callNames[c.ID] = c.Name
				if flatten {
					parts = append(parts, geminiPart{Text: fmt.Sprintf("[called tool %s with %s]", c.Name, argumentsJSON(c.Arguments))})
					continue
				}
				args := c.Arguments
				if args == nil {
					args = map[string]any{}
				}
				parts = append(parts, geminiPart{FunctionCall: &geminiFunctionCall{Name: c.Name, Args: args}})
			}
			add("model", parts...)
		case llm.RoleTool:
			name := m.Name
			if n, ok := callNames[m.ToolCallID]; ok && n != "" {
				name = n
			}
			if flatten {
				add("user", geminiPart{Text: fmt.Sprintf("[tool %s result]: %s", name, m.Content)})
				continue
			}
			add("user", geminiPart{FunctionResponse: &geminiFunctionResponse{
				Name:     name,
				Response: map[string]any{"content": m.Content},
			}})
		default:
			add("user", geminiPart{Text: m.Content})
		}
	}
	return contents
}
