package llm

import "context"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a function invocation requested by the model
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// Message is one turn in the provider-neutral conversation format.
// A tool result carries ToolCallID and Name and its Content is the tool output.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// Tool describes a function the model may call. Parameters is a JSON schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ChatRequest is a provider-neutral completion request
type ChatRequest struct {
	Model       string
	System      string
	Messages    []Message
	Tools       []Tool
	MaxTokens   int
	Temperature *float64
}

// Usage reports token counts when the vendor returns them
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// ChatResponse is the provider-neutral completion result
type ChatResponse struct {
	Content      string
	ToolCalls    []ToolCall
	FinishReason string
	Usage        Usage
}

// Provider is an LLM vendor adapter
type Provider interface {
	Name() string
	// Chat sends the conversation and returns the model reply.
	// Non-2xx vendor answers are returned as *errs.ProviderError.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Registry resolves configured providers by name
type Registry interface {
	// Get returns the named provider or ErrUnknownProvider
	Get(name string) (Provider, error)
	Names() []string
	DefaultModel(name string) string
}
