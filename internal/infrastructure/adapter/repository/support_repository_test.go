package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPackageRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindActive returns nil when nothing is active", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserPackageRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(q(`SELECT * FROM "user_packages" WHERE user_id = $1 AND package_id = $2 AND status = $3 ORDER BY expires_at DESC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		up, err := repo.FindActive(ctx, 7, 2)
		require.NoError(t, err)
		assert.Nil(t, up)
	})

	t.Run("ExpireDue reports affected rows", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserPackageRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(q(`UPDATE "user_packages" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.ExpireDue(ctx, fixedTime)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServicePackageRepository_ListActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewServicePackageRepository(db, logger.NewNoopLogger())

	mock.ExpectQuery(q(`SELECT * FROM "service_packages" WHERE active = $1 ORDER BY price_in_cents, id`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price_in_cents", "duration_days", "active", "created_at", "updated_at"}).
			AddRow(1, "Starter", "", 0, 7, true, fixedTime, fixedTime).
			AddRow(2, "Pro", "", 1999, 30, true, fixedTime, fixedTime))

	list, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pro", list[1].Name)
	assert.Equal(t, int64(1999), list[1].PriceInCents)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "user_id", "type", "title", "body", "read_at", "created_at"}

	t.Run("foreign notification is not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(q(`SELECT * FROM "notifications" WHERE id = $1 AND user_id = $2`)).
			WillReturnRows(sqlmock.NewRows(columns))

		assert.ErrorIs(t, repo.MarkRead(ctx, 7, 3, fixedTime), errs.ErrNotFound)
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(q(`SELECT * FROM "notifications" WHERE id = $1 AND user_id = $2`)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, 7, "info", "hi", "", fixedTime, fixedTime))

		require.NoError(t, repo.MarkRead(ctx, 7, 3, fixedTime))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unread is updated", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(q(`SELECT * FROM "notifications" WHERE id = $1 AND user_id = $2`)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, 7, "info", "hi", "", nil, fixedTime))
		mock.ExpectExec(q(`UPDATE "notifications" SET "read_at"=$1 WHERE id = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkRead(ctx, 7, 3, fixedTime))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeviceRepository_MarkOfflineExcept(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db, logger.NewNoopLogger())

	mock.ExpectExec(q(`UPDATE "devices" SET`) + `.*` + q(`external_id NOT IN ($`)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkOfflineExcept(context.Background(), 7, []string{"dev-1"}, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_OnlineUserIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db, logger.NewNoopLogger())

	mock.ExpectQuery(q(`SELECT DISTINCT "user_id" FROM "devices" WHERE status <> $1`)).
		WithArgs(string(entity.DeviceOffline)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(5).AddRow(9))

	ids, err := repo.OnlineUserIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteSession of another user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewChatRepository(db, logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(q(`DELETE FROM "chat_sessions" WHERE id = $1 AND user_id = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.DeleteSession(ctx, 7, "5b1d"), errs.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListMessages decodes tool calls", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewChatRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(q(`SELECT * FROM "chat_messages" WHERE session_id = $1 ORDER BY id`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "role", "content", "tool_calls", "tool_call_id", "tool_name", "created_at"}).
				AddRow(1, "5b1d", "user", "list my devices", "[]", "", "", fixedTime).
				AddRow(2, "5b1d", "assistant", "", `[{"id":"call_1","name":"list_devices","arguments":{}}]`, "", "", fixedTime))

		msgs, err := repo.ListMessages(ctx, "5b1d")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.False(t, msgs[0].HasToolCalls())
		require.Len(t, msgs[1].ToolCalls, 1)
		assert.Equal(t, "list_devices", msgs[1].ToolCalls[0].Name)
		assert.Equal(t, entity.ChatRoleAssistant, msgs[1].Role)
	})
}

func TestDataCollectionRepository_SaveNew(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDataCollectionRepository(db, logger.NewNoopLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "data_collections" WHERE user_id = $1 AND name = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(q(`INSERT INTO "data_collections"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(q(`INSERT INTO "data_collection_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectCommit()

	c := &entity.UserDataCollection{
		UserID: 7, Name: "contacts", Source: "manual", CreatedAt: fixedTime, UpdatedAt: fixedTime,
		Items: []entity.UserDataCollectionItem{
			{Key: "alice", Value: "+100", Position: 0},
			{Key: "bob", Value: "+200", Position: 1},
		},
	}
	require.NoError(t, repo.Save(context.Background(), c))
	assert.Equal(t, uint64(5), c.ID)
	assert.Equal(t, uint64(11), c.Items[1].ID)
	assert.Equal(t, uint64(5), c.Items[1].CollectionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalSettingRepository_GetMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWithdrawalSettingRepository(db, logger.NewNoopLogger())

	mock.ExpectQuery(q(`SELECT * FROM "withdrawal_settings" WHERE "withdrawal_settings"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
