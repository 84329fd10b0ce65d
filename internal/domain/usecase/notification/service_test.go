package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mpers "github.com/amirhossein-jamali/agent-console/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mpers.MockNotificationRepository) {
	repo := mpers.NewMockNotificationRepository(t)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewService(repo, tp, logger), repo
}

func TestNotify(t *testing.T) {
	t.Run("Stores notification", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == 3 && n.Type == entity.NotificationSystem && n.Title == "Hello" && !n.IsRead()
		})).Return(nil)

		require.NoError(t, svc.Notify(context.Background(), 3, "", "Hello", "World"))
	})

	t.Run("Missing title", func(t *testing.T) {
		svc, _ := newService(t)
		assert.ErrorIs(t, svc.Notify(context.Background(), 3, "wallet", "", "x"), errs.ErrInvalidRequest)
	})
}

func TestList(t *testing.T) {
	svc, repo := newService(t)
	repo.On("List", mock.Anything, uint64(3), true, 1, 100).Return([]*entity.Notification{{ID: 1}}, int64(1), nil)
	repo.On("CountUnread", mock.Anything, uint64(3)).Return(int64(4), nil)

	page, err := svc.List(context.Background(), 3, true, 0, 1000)

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Unread)
	assert.Equal(t, 100, page.PageSize)
}

func TestMarkRead(t *testing.T) {
	svc, repo := newService(t)
	repo.On("MarkRead", mock.Anything, uint64(3), uint64(10), fixedTime).Return(errs.ErrNotFound).Once()
	repo.On("MarkAllRead", mock.Anything, uint64(3), fixedTime).Return(int64(2), nil).Once()

	assert.ErrorIs(t, svc.MarkRead(context.Background(), 3, 10), errs.ErrNotFound)

	n, err := svc.MarkAllRead(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
