package collection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mpers "github.com/amirhossein-jamali/agent-console/mocks/port/persistence"
)

func newService(t *testing.T) (*Service, *mpers.MockDataCollectionRepository) {
	repo := mpers.NewMockDataCollectionRepository(t)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewService(repo, tp, logger), repo
}

func TestSaveCollection(t *testing.T) {
	t.Run("Keeps first position of duplicate keys", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		c, err := svc.SaveCollection(context.Background(), 4, " contacts ", "", []usecase.CollectionItemInput{
			{Key: "alice", Value: "1"},
			{Key: "bob", Value: "2"},
			{Key: "alice", Value: "3"},
		})

		require.NoError(t, err)
		assert.Equal(t, "contacts", c.Name)
		assert.Equal(t, "manual", c.Source)
		require.Len(t, c.Items, 2)
		assert.Equal(t, entity.UserDataCollectionItem{Key: "alice", Value: "3", Position: 0}, c.Items[0])
		assert.Equal(t, "bob", c.Items[1].Key)
	})

	t.Run("Empty key", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.SaveCollection(context.Background(), 4, "x", "", []usecase.CollectionItemInput{{Key: " ", Value: "v"}})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Missing name", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.SaveCollection(context.Background(), 4, "", "s1", nil)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestCollectionAccess(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Get", mock.Anything, uint64(4), uint64(9)).Return(nil, errs.ErrNotFound)
	repo.On("Delete", mock.Anything, uint64(4), uint64(9)).Return(nil)

	_, err := svc.GetCollection(context.Background(), 4, 9)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, svc.DeleteCollection(context.Background(), 4, 9))

	_, err = svc.ListCollections(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}
