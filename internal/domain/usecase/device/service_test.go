package device

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
	mbridge "github.com/amirhossein-jamali/agent-console/mocks/port/bridge"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mpers "github.com/amirhossein-jamali/agent-console/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mpers.MockDeviceRepository, *mbridge.MockClient) {
	repo := mpers.NewMockDeviceRepository(t)
	client := mbridge.NewMockClient(t)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return NewService(repo, client, tp, logger), repo, client
}

func TestSyncUserDevices(t *testing.T) {
	t.Run("Stores only owned devices", func(t *testing.T) {
		svc, repo, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return([]bridge.Device{
			{ID: "pixel", UserID: 5, Name: "Pixel", Status: "online", LastSeen: "2024-06-01T11:59:00Z"},
			{ID: "other", UserID: 6, Status: "online"},
		}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
			return d.ExternalID == "pixel" && d.UserID == 5 && d.Status == entity.DeviceOnline && d.LastSeenAt != nil
		})).Return(nil).Once()
		repo.On("MarkOfflineExcept", mock.Anything, uint64(5), []string{"pixel"}, fixedTime).Return(int64(1), nil)
		stored := []*entity.Device{{ID: 1, ExternalID: "pixel", UserID: 5}}
		repo.On("ListByUser", mock.Anything, uint64(5)).Return(stored, nil)

		devices, err := svc.SyncUserDevices(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, stored, devices)
	})

	t.Run("Bridge down serves stored list", func(t *testing.T) {
		svc, repo, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return(nil, errs.ErrBridgeUnavailable)
		repo.On("ListByUser", mock.Anything, uint64(5)).Return([]*entity.Device{}, nil)

		devices, err := svc.SyncUserDevices(context.Background(), 5)

		require.NoError(t, err)
		assert.Empty(t, devices)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestGetUserDevice(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.On("GetByID", mock.Anything, uint64(1)).Return(&entity.Device{ID: 1, UserID: 5}, nil)

	d, err := svc.GetUserDevice(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.ID)

	_, err = svc.GetUserDevice(context.Background(), 6, 1)
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
}

func TestSyncAll(t *testing.T) {
	t.Run("Groups by user", func(t *testing.T) {
		svc, repo, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return([]bridge.Device{
			{ID: "a", UserID: 1}, {ID: "b", UserID: 2}, {ID: "orphan"},
		}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
		repo.On("MarkOfflineExcept", mock.Anything, uint64(1), []string{"a"}, fixedTime).Return(int64(0), nil)
		repo.On("MarkOfflineExcept", mock.Anything, uint64(2), []string{"b"}, fixedTime).Return(int64(0), nil)
		repo.On("OnlineUserIDs", mock.Anything).Return([]uint64{1, 2}, nil)

		require.NoError(t, svc.SyncAll(context.Background()))
	})

	t.Run("User missing from bridge", func(t *testing.T) {
		svc, repo, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return([]bridge.Device{{ID: "b", UserID: 6}}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("MarkOfflineExcept", mock.Anything, uint64(6), []string{"b"}, fixedTime).Return(int64(0), nil)
		repo.On("OnlineUserIDs", mock.Anything).Return([]uint64{5, 6}, nil)
		repo.On("MarkOfflineExcept", mock.Anything, uint64(5), []string(nil), fixedTime).Return(int64(1), nil).Once()

		require.NoError(t, svc.SyncAll(context.Background()))
		repo.AssertCalled(t, "MarkOfflineExcept", mock.Anything, uint64(5), []string(nil), fixedTime)
	})

	t.Run("Empty bridge response", func(t *testing.T) {
		svc, repo, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return([]bridge.Device{}, nil)
		repo.On("OnlineUserIDs", mock.Anything).Return([]uint64{5}, nil)
		repo.On("MarkOfflineExcept", mock.Anything, uint64(5), []string(nil), fixedTime).Return(int64(2), nil).Once()

		require.NoError(t, svc.SyncAll(context.Background()))
	})

	t.Run("Bridge error", func(t *testing.T) {
		svc, _, client := newService(t)
		client.On("SyncDevices", mock.Anything).Return(nil, errors.New("dial tcp: refused"))

		assert.Error(t, svc.SyncAll(context.Background()))
	})
}
