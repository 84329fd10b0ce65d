package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{RestURL: srv.URL + "/", Timeout: time.Second}, logger.NewNoopLogger())
}

func TestClientDevices(t *testing.T) {
	t.Run("Wrapped list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/devices/sync", r.URL.Path)
			_, _ = w.Write([]byte(`{"devices": [{"id": "pixel", "user_id": 4, "name": "Pixel 8", "status": "online"}]}`))
		})

		devices, err := c.SyncDevices(context.Background())

		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, uint64(4), devices[0].UserID)
		assert.Equal(t, "Pixel 8", devices[0].Name)
	})

	t.Run("Bare array", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`[{"id": "a"}, {"id": "b"}]`))
		})

		devices, err := c.ListDevices(context.Background())

		require.NoError(t, err)
		assert.Len(t, devices, 2)
	})

	t.Run("Server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error": "adb not running"}`))
		})

		_, err := c.ListDevices(context.Background())

		assert.ErrorIs(t, err, errs.ErrBridgeUnavailable)
		assert.Contains(t, err.Error(), "adb not running")
	})
}

func TestClientTools(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pixel 8", r.URL.Query().Get("device_id"))
		_, _ = w.Write([]byte(`{"tools": [
			{"name": "tap", "description": "Tap", "parameters": {"type": "object"}},
			{"name": "home", "input_schema": {"type": "object", "properties": {}}},
			{"name": "back"},
			{"description": "nameless"}
		]}`))
	})

	tools, err := c.Tools(context.Background(), "pixel 8")

	require.NoError(t, err)
	require.Len(t, tools, 3)
	assert.Equal(t, map[string]any{"type": "object"}, tools[0].Parameters)
	assert.Equal(t, "object", tools[1].Parameters["type"])
	assert.NotNil(t, tools[2].Parameters)
}

func TestClientExecuteTool(t *testing.T) {
	t.Run("Structured output", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/execute", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "pixel", body["device_id"])
			assert.Equal(t, "s1", body["session_id"])
			assert.Equal(t, "tap", body["tool"])
			assert.Equal(t, "call-1", body["call_id"])
			assert.Equal(t, map[string]any{}, body["arguments"])
			_, _ = w.Write([]byte(`{"success": true, "output": {"clicked": true}}`))
		})

		res, err := c.ExecuteTool(context.Background(), "pixel", "s1", llm.ToolCall{ID: "call-1", Name: "tap"})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.JSONEq(t, `{"clicked": true}`, res.Output)
	})

	t.Run("Tool failure is not a transport error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "error": "element not found"}`))
		})

		res, err := c.ExecuteTool(context.Background(), "pixel", "s1", llm.ToolCall{ID: "c", Name: "tap"})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "element not found", res.Error)
	})

	t.Run("Unreachable bridge", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := NewClient(Config{RestURL: srv.URL}, logger.NewNoopLogger())

		_, err := c.ExecuteTool(context.Background(), "pixel", "s1", llm.ToolCall{Name: "tap"})

		assert.ErrorIs(t, err, errs.ErrBridgeUnavailable)
	})
}
