package chat

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

const (
	// DefaultMaxIterations bounds provider round trips per user message
	DefaultMaxIterations = 8

	// MaxMessageLength is the longest user message accepted, in runes
	MaxMessageLength = 8000

	titleLength = 60
)

// DefaultSystemPrompt is used when no prompt is configured
const DefaultSystemPrompt = "You are an assistant that operates the user's Android device through the provided tools. " +
	"Call tools when an action on the device is needed and report the outcome briefly."

// Config tunes the agent loop
type Config struct {
	MaxIterations int
	MaxTokens     int
	SystemPrompt  string
}

// Service implements usecase.ChatUseCase
type Service struct {
	repo         persistence.ChatRepository
	providers    llm.Registry
	bridge       bridge.Client
	devices      usecase.DeviceUseCase
	collections  usecase.CollectionUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	cfg          Config
	newID        func() string
}

// NewService creates the chat service
func NewService(
	repo persistence.ChatRepository,
	providers llm.Registry,
	client bridge.Client,
	devices usecase.DeviceUseCase,
	collections usecase.CollectionUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	cfg Config,
) *Service {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	return &Service{
		repo:         repo,
		providers:    providers,
		bridge:       client,
		devices:      devices,
		collections:  collections,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		cfg:          cfg,
		newID:        uuid.NewString,
	}
}

// CreateSession opens a session on a configured provider, optionally bound to one of the user's devices
func (s *Service) CreateSession(ctx context.Context, userID uint64, req usecase.CreateSessionRequest) (*entity.ChatSession, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if _, err := s.providers.Get(provider); err != nil {
		v := errs.NewValidationError()
		v.Add("provider", "is not configured")
		return nil, v
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = s.providers.DefaultModel(provider)
	}
	if req.DeviceID != nil {
		if _, err := s.devices.GetUserDevice(ctx, userID, *req.DeviceID); err != nil {
			return nil, err
		}
	}

	session, err := entity.NewChatSession(s.newID(), userID, provider, model, req.DeviceID, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("Chat session created", map[string]any{
		"user_id":    userID,
		"session_id": session.ID,
		"provider":   provider,
		"model":      model,
	})
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context, userID uint64) ([]*entity.ChatSession, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.repo.ListSessions(ctx, userID)
}

// History returns a session and its messages in order
func (s *Service) History(ctx context.Context, userID uint64, sessionID string) (*usecase.SessionHistory, error) {
	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.ListMessages(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return &usecase.SessionHistory{Session: session, Messages: messages}, nil
}

func (s *Service) DeleteSession(ctx context.Context, userID uint64, sessionID string) error {
	if _, err := s.repo.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.repo.DeleteSession(ctx, userID, sessionID)
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	v := errs.NewValidationError()
	switch {
	case text == "":
		v.Add("message", "is required")
	case utf8.RuneCountInString(text) > MaxMessageLength:
		v.Add("message", "is too long")
	}
	return text, v.OrNil()
}

func titleFrom(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= titleLength {
		return text
	}
	r := []rune(text)
	return string(r[:titleLength]) + "..."
}
