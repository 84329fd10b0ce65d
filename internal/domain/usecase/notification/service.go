package notification

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// Service implements usecase.NotificationUseCase
type Service struct {
	repo         persistence.NotificationRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new notification service
func NewService(repo persistence.NotificationRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{repo: repo, timeProvider: timeProvider, logger: logger}
}

// Notify stores a notification for a user
func (s *Service) Notify(ctx context.Context, userID uint64, notificationType, title, body string) error {
	n, err := entity.NewNotification(userID, notificationType, title, body, s.timeProvider)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("Failed to store notification", map[string]any{"user_id": userID, "error": err.Error()})
		return err
	}
	return nil
}

// List returns one page of a user's notifications with the unread count
func (s *Service) List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) (*usecase.NotificationPage, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > usecase.MaxPageSize {
		pageSize = usecase.MaxPageSize
	}

	items, total, err := s.repo.List(ctx, userID, unreadOnly, page, pageSize)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &usecase.NotificationPage{Items: items, Total: total, Unread: unread, Page: page, PageSize: pageSize}, nil
}

// MarkRead marks one notification as read
func (s *Service) MarkRead(ctx context.Context, userID, id uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	return s.repo.MarkRead(ctx, userID, id, s.timeProvider.Now())
}

// MarkAllRead marks every unread notification of the user as read
func (s *Service) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	return s.repo.MarkAllRead(ctx, userID, s.timeProvider.Now())
}
