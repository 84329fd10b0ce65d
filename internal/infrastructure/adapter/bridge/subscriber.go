package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// Subscriber reads realtime events from the bridge WebSocket and dispatches them to handlers.
// It reconnects with a fixed delay until its context is cancelled.
type Subscriber struct {
	mu             sync.RWMutex
	url            string
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	handlers       []bridge.EventHandler
	logger         coreport.Logger
}

// NewSubscriber creates a subscriber for the bridge event stream
func NewSubscriber(cfg Config, logger coreport.Logger) *Subscriber {
	u := cfg.WSURL
	if u == "" {
		u = DefaultWSURL
	}
	delay := cfg.ReconnectDelay
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}
	return &Subscriber{
		url:            u,
		reconnectDelay: delay,
		dialer:         &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		logger:         logger,
	}
}

// OnEvent registers a handler for every event
func (s *Subscriber) OnEvent(h bridge.EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, h)
}

// Run blocks until ctx is cancelled
func (s *Subscriber) Run(ctx context.Context) {
	for {
		if err := s.listen(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("Bridge event stream disconnected", map[string]any{
				"url":             s.url,
				"error":           err.Error(),
				"reconnect_after": s.reconnectDelay.String(),
			})
		}
		select {
		case <-ctx.Done():
			s.logger.Info("Bridge event subscriber stopped", nil)
			return
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Subscriber) listen(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}
	s.logger.Info("Connected to bridge event stream", map[string]any{"url": s.url})

	// Closing the connection unblocks ReadMessage on cancellation
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		event, ok := parseEvent(message)
		if !ok {
			s.logger.Debug("Ignoring malformed bridge event", map[string]any{"size": len(message)})
			continue
		}
		s.dispatch(ctx, event)
	}
}

func (s *Subscriber) dispatch(ctx context.Context, event bridge.Event) {
	s.mu.RLock()
	handlers := append([]bridge.EventHandler(nil), s.handlers...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h(ctx, event)
	}
}

// parseEvent reads an event leniently. The timestamp may be RFC3339 text or epoch milliseconds.
func parseEvent(message []byte) (bridge.Event, bool) {
	if !gjson.ValidBytes(message) {
		return bridge.Event{}, false
	}
	r := gjson.ParseBytes(message)
	event := bridge.Event{
		Type:      r.Get("type").String(),
		SessionID: r.Get("session_id").String(),
		DeviceID:  r.Get("device_id").String(),
		CallID:    r.Get("call_id").String(),
		Tool:      r.Get("tool").String(),
		Status:    r.Get("status").String(),
	}
	if out := r.Get("output"); out.Exists() {
		if out.Type == gjson.String {
			event.Output = out.Str
		} else {
			event.Output = out.Raw
		}
	}
	if event.Type == "" {
		return bridge.Event{}, false
	}

	ts := r.Get("timestamp")
	switch ts.Type {
	case gjson.Number:
		event.Timestamp = time.UnixMilli(ts.Int()).UTC()
	case gjson.String:
		if t, err := time.Parse(time.RFC3339Nano, ts.Str); err == nil {
			event.Timestamp = t.UTC()
		}
	}
	return event, true
}
