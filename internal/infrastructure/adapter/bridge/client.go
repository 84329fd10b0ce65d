// Package bridge is the client side of the agent bridge that drives Android devices.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

// Config locates the bridge
type Config struct {
	RestURL        string
	WSURL          string
	Timeout        time.Duration
	ReconnectDelay time.Duration
}

// Defaults used when the config leaves a field empty
const (
	DefaultRestURL        = "http://127.0.0.1:3001"
	DefaultWSURL          = "ws://127.0.0.1:3002"
	DefaultTimeout        = 30 * time.Second
	DefaultReconnectDelay = 5 * time.Second
)

// Client calls the bridge REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a bridge REST client
func NewClient(cfg Config, logger coreport.Logger) *Client {
	base := strings.TrimRight(cfg.RestURL, "/")
	if base == "" {
		base = DefaultRestURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ bridge.Client = (*Client)(nil)

// ListDevices returns the devices currently known to the bridge
func (c *Client) ListDevices(ctx context.Context) ([]bridge.Device, error) {
	data, err := c.do(ctx, http.MethodGet, "/devices", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[bridge.Device](data, "devices")
}

// SyncDevices asks the bridge to rescan and returns the refreshed list
func (c *Client) SyncDevices(ctx context.Context) ([]bridge.Device, error) {
	data, err := c.do(ctx, http.MethodPost, "/devices/sync", struct{}{})
	if err != nil {
		return nil, err
	}
	return decodeList[bridge.Device](data, "devices")
}

type toolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	InputSchema map[string]any `json:"input_schema"`
}

// Tools lists the tools a device exposes
func (c *Client) Tools(ctx context.Context, deviceID string) ([]llm.Tool, error) {
	data, err := c.do(ctx, http.MethodGet, "/tools?device_id="+url.QueryEscape(deviceID), nil)
	if err != nil {
		return nil, err
	}
	defs, err := decodeList[toolDef](data, "tools")
	if err != nil {
		return nil, err
	}
	tools := make([]llm.Tool, 0, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			continue
		}
		params := d.Parameters
		if params == nil {
			params = d.InputSchema
		}
		if params == nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		tools = append(tools, llm.Tool{Name: d.Name, Description: d.Description, Parameters: params})
	}
	return tools, nil
}

type executeRequest struct {
	DeviceID  string         `json:"device_id"`
	SessionID string         `json:"session_id,omitempty"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	CallID    string         `json:"call_id"`
}

// ExecuteTool runs one tool call on a device
func (c *Client) ExecuteTool(ctx context.Context, deviceID, sessionID string, call llm.ToolCall) (*bridge.ExecuteResult, error) {
	args := call.Arguments
	if args == nil {
		args = map[string]any{}
	}
	data, err := c.do(ctx, http.MethodPost, "/execute", executeRequest{
		DeviceID:  deviceID,
		SessionID: sessionID,
		Tool:      call.Name,
		Arguments: args,
		CallID:    call.ID,
	})
	if err != nil {
		return nil, err
	}

	result := &bridge.ExecuteResult{
		Success: gjson.GetBytes(data, "success").Bool(),
		Error:   gjson.GetBytes(data, "error").String(),
	}
	// output may be text or structured JSON
	if out := gjson.GetBytes(data, "output"); out.Exists() {
		if out.Type == gjson.String {
			result.Output = out.Str
		} else {
			result.Output = out.Raw
		}
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal bridge request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build bridge request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Bridge request failed", map[string]any{"method": method, "path": path, "error": err.Error()})
		return nil, fmt.Errorf("%w: %v", errs.ErrBridgeUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", errs.ErrBridgeUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(data, "error").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.logger.Warn("Bridge returned an error", map[string]any{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"error":  msg,
		})
		return nil, fmt.Errorf("%w: status %d: %s", errs.ErrBridgeUnavailable, resp.StatusCode, msg)
	}
	return data, nil
}

// decodeList accepts a bare array or an object holding the array under key
func decodeList[T any](data []byte, key string) ([]T, error) {
	raw := gjson.ParseBytes(data)
	if !raw.IsArray() {
		raw = raw.Get(key)
	}
	if !raw.Exists() || raw.Type == gjson.Null {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw.Raw), &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", errs.ErrBridgeUnavailable, key, err)
	}
	return out, nil
}
