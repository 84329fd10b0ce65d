package bridge

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

// Event types pushed by the bridge
const (
	EventToolProgress = "tool_progress"
	EventToolResult   = "tool_result"
	EventDeviceStatus = "device_status"
)

// Device is a device as reported by the bridge
type Device struct {
	ID       string `json:"id"`
	UserID   uint64 `json:"user_id"`
	Name     string `json:"name"`
	Model    string `json:"model"`
	Status   string `json:"status"`
	LastSeen string `json:"last_seen,omitempty"`
}

// ExecuteResult is the outcome of running one tool on a device
type ExecuteResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}

// Event is a realtime message from the bridge
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	DeviceID  string    `json:"device_id"`
	CallID    string    `json:"call_id"`
	Tool      string    `json:"tool"`
	Status    string    `json:"status"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// EventHandler receives bridge events
type EventHandler func(ctx context.Context, event Event)

// Client talks to the agent bridge REST API.
// Transport failures and non-2xx answers are returned as ErrBridgeUnavailable.
type Client interface {
	ListDevices(ctx context.Context) ([]Device, error)
	SyncDevices(ctx context.Context) ([]Device, error)
	Tools(ctx context.Context, deviceID string) ([]llm.Tool, error)
	ExecuteTool(ctx context.Context, deviceID, sessionID string, call llm.ToolCall) (*ExecuteResult, error)
}
