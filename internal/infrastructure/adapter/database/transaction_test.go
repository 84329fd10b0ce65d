package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUnitOfWork_BeginSetsLockTimeout(t *testing.T) {
	db, mock := setupMockDB(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), 3*time.Second)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL lock_timeout = '3000ms'`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance", "held", "currency"}).
			AddRow(1, 7, 100, 0, "USD"))
	mock.ExpectCommit()

	ctx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	wallet, err := uow.GetWalletRepository(ctx).GetByUserIDForUpdate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), wallet.Balance())

	require.NoError(t, uow.Commit(ctx))
	assert.NoError(t, uow.Rollback(ctx), "rollback after commit is a no-op")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_Rollback(t *testing.T) {
	db, mock := setupMockDB(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), 0)

	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_WithoutTransaction(t *testing.T) {
	db, _ := setupMockDB(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), 0)

	assert.ErrorIs(t, uow.Commit(context.Background()), errNoTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), errNoTransaction)
}

func TestUnitOfWork_CommitLockFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), 0)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"))

	ctx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, uow.Commit(ctx), errs.ErrWalletBusy)
}

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"lock timeout", errors.New("canceling statement due to lock timeout"), errs.ErrWalletBusy},
		{"serialization", errors.New("could not serialize access due to concurrent update"), errs.ErrWalletBusy},
		{"duplicate reference", errors.New(`duplicate key value violates unique constraint "idx_transactions_reference"`), errs.ErrDuplicateTransaction},
		{"duplicate email", errors.New(`duplicate key value violates unique constraint "idx_users_email"`), errs.ErrDuplicateUser},
		{"check constraint", errors.New(`new row violates check constraint "chk_wallets_balance"`), errs.ErrConstraintViolation},
		{"connection refused", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
		{"deadline", context.DeadlineExceeded, errs.ErrDatabaseConnection},
		{"unknown", errors.New("syntax error at or near"), errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tt.err, "test"), tt.want)
		})
	}

	assert.NoError(t, m.MapError(nil, "test"))
}
