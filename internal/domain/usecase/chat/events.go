package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
)

// HandleBridgeEvent records bridge progress events as tool notes on the session
func (s *Service) HandleBridgeEvent(ctx context.Context, event bridge.Event) {
	if event.Type != bridge.EventToolProgress || event.SessionID == "" {
		return
	}
	session, err := s.repo.FindSession(ctx, event.SessionID)
	if err != nil {
		s.logger.Debug("Bridge event for unknown session", map[string]any{"session_id": event.SessionID})
		return
	}

	note := &entity.ChatMessage{
		SessionID: session.ID,
		Role:      entity.ChatRoleTool,
		Content:   progressLine(event),
		ToolName:  event.Tool,
	}
	if _, err := s.appendMessage(ctx, note); err != nil {
		s.logger.Error("Failed to store tool progress", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

func progressLine(e bridge.Event) string {
	var b strings.Builder
	tool := e.Tool
	if tool == "" {
		tool = "tool"
	}
	fmt.Fprintf(&b, "[%s]", tool)
	if e.Status != "" {
		fmt.Fprintf(&b, " %s", e.Status)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		fmt.Fprintf(&b, ": %s", out)
	}
	return b.String()
}
