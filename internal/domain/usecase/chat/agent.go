package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
)

const toolLimitReply = "I stopped before finishing because this request needed too many tool calls."

// SendMessage stores the user text, runs the provider and tool loop and returns the final assistant message
func (s *Service) SendMessage(ctx context.Context, userID uint64, sessionID, text string) (*entity.ChatMessage, error) {
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}
	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	provider, err := s.providers.Get(session.Provider)
	if err != nil {
		return nil, err
	}

	if _, err := s.appendMessage(ctx, &entity.ChatMessage{SessionID: session.ID, Role: entity.ChatRoleUser, Content: text}); err != nil {
		return nil, err
	}
	if session.Title == "" || session.Title == "New chat" {
		session.Title = titleFrom(text)
	}
	session.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		s.logger.Warn("Failed to update chat session", map[string]any{"session_id": session.ID, "error": err.Error()})
	}

	deviceRef, tools := s.sessionTools(ctx, userID, session)

	history, err := s.repo.ListMessages(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	messages := toProviderMessages(history)

	for iteration := 0; ; iteration++ {
		// Tools stay declared on every call: vendors reject tool turns in history without them
		req := llm.ChatRequest{
			Model:     session.Model,
			System:    s.cfg.SystemPrompt,
			Messages:  messages,
			Tools:     tools,
			MaxTokens: s.cfg.MaxTokens,
		}

		resp, err := s.callProvider(ctx, provider, req)
		if err != nil {
			s.logger.Error("LLM request failed", map[string]any{
				"session_id": session.ID,
				"provider":   session.Provider,
				"error":      err.Error(),
			})
			return nil, err
		}

		assistant := &entity.ChatMessage{
			SessionID: session.ID,
			Role:      entity.ChatRoleAssistant,
			Content:   resp.Content,
			ToolCalls: toEntityCalls(resp.ToolCalls),
		}
		if !assistant.HasToolCalls() {
			return s.appendMessage(ctx, assistant)
		}
		if iteration >= s.cfg.MaxIterations {
			s.logger.Warn("Tool iteration limit reached", map[string]any{
				"session_id": session.ID,
				"iterations": iteration,
				"dropped":    len(assistant.ToolCalls),
			})
			assistant.ToolCalls = nil
			if assistant.Content == "" {
				assistant.Content = toolLimitReply
			}
			return s.appendMessage(ctx, assistant)
		}
		if _, err := s.appendMessage(ctx, assistant); err != nil {
			return nil, err
		}
		messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content, ToolCalls: resp.ToolCalls})

		for _, call := range resp.ToolCalls {
			output := s.runTool(ctx, userID, session.ID, deviceRef, call)
			if _, err := s.appendMessage(ctx, &entity.ChatMessage{
				SessionID:  session.ID,
				Role:       entity.ChatRoleTool,
				Content:    output,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			}); err != nil {
				return nil, err
			}
			messages = append(messages, llm.Message{Role: llm.RoleTool, Content: output, ToolCallID: call.ID, Name: call.Name})
		}
	}
}

// sessionTools returns the bridge device id and the tools offered to the model.
// A session without a device only gets the local tools.
func (s *Service) sessionTools(ctx context.Context, userID uint64, session *entity.ChatSession) (string, []llm.Tool) {
	tools := []llm.Tool{saveCollectionTool()}
	if session.DeviceID == nil {
		return "", tools
	}
	device, err := s.devices.GetUserDevice(ctx, userID, *session.DeviceID)
	if err != nil {
		s.logger.Warn("Session device unavailable", map[string]any{"session_id": session.ID, "error": err.Error()})
		return "", tools
	}
	remote, err := s.bridge.Tools(ctx, device.ExternalID)
	if err != nil {
		s.logger.Warn("Failed to load bridge tools", map[string]any{
			"session_id": session.ID,
			"device_id":  device.ExternalID,
			"error":      err.Error(),
		})
		return device.ExternalID, tools
	}
	return device.ExternalID, append(remote, tools...)
}

func (s *Service) callProvider(ctx context.Context, provider llm.Provider, req llm.ChatRequest) (*llm.ChatResponse, error) {
	start := s.timeProvider.Now()
	resp, err := provider.Chat(ctx, req)
	outcome := "success"
	switch {
	case IsProviderFailure(err):
		outcome = "provider_error"
	case err != nil:
		outcome = "error"
	}
	s.metrics.LLMRequest(provider.Name(), outcome, s.timeProvider.Since(start).Std())
	return resp, err
}

// runTool executes one call and always returns text for the model. Failures become "error: ..." results.
func (s *Service) runTool(ctx context.Context, userID uint64, sessionID, deviceRef string, call llm.ToolCall) string {
	if call.Name == SaveCollectionTool {
		out, err := s.saveCollection(ctx, userID, sessionID, call.Arguments)
		return s.toolOutcome(call.Name, out, err)
	}
	if deviceRef == "" {
		return s.toolOutcome(call.Name, "", errors.New("no device is attached to this chat"))
	}

	result, err := s.bridge.ExecuteTool(ctx, deviceRef, sessionID, call)
	if err != nil {
		s.logger.Warn("Bridge tool execution failed", map[string]any{
			"session_id": sessionID,
			"tool":       call.Name,
			"error":      err.Error(),
		})
		return s.toolOutcome(call.Name, "", err)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "tool reported failure"
		}
		return s.toolOutcome(call.Name, "", errors.New(msg))
	}
	return s.toolOutcome(call.Name, result.Output, nil)
}

func (s *Service) toolOutcome(tool, output string, err error) string {
	if err != nil {
		s.metrics.ToolExecution(tool, "error")
		return fmt.Sprintf("error: %s", err.Error())
	}
	s.metrics.ToolExecution(tool, "success")
	if output == "" {
		return "ok"
	}
	return output
}

func (s *Service) appendMessage(ctx context.Context, m *entity.ChatMessage) (*entity.ChatMessage, error) {
	m.CreatedAt = s.timeProvider.Now()
	if err := s.repo.AppendMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("append chat message: %w", err)
	}
	return m, nil
}

// toProviderMessages converts stored turns. Progress notes carry no call id and are not sent to the model.
func toProviderMessages(history []*entity.ChatMessage) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case entity.ChatRoleUser:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: m.Content})
		case entity.ChatRoleAssistant:
			msg := llm.Message{Role: llm.RoleAssistant, Content: m.Content}
			for _, c := range m.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{ID: c.ID, Name: c.Name, Arguments: c.Arguments})
			}
			out = append(out, msg)
		case entity.ChatRoleTool:
			if m.ToolCallID == "" {
				continue
			}
			out = append(out, llm.Message{Role: llm.RoleTool, Content: m.Content, ToolCallID: m.ToolCallID, Name: m.ToolName})
		}
	}
	return out
}

func toEntityCalls(calls []llm.ToolCall) []entity.ChatToolCall {
	if len(calls) == 0 {
		return nil
	}
	out := make([]entity.ChatToolCall, len(calls))
	for i, c := range calls {
		out[i] = entity.ChatToolCall{ID: c.ID, Name: c.Name, Arguments: c.Arguments}
	}
	return out
}

// IsProviderFailure reports whether err came from an LLM vendor rather than local validation
func IsProviderFailure(err error) bool {
	var pe *errs.ProviderError
	return errors.As(err, &pe) || errors.Is(err, errs.ErrProviderUnavailable)
}
