package wallet

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
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mpers "github.com/amirhossein-jamali/agent-console/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/agent-console/mocks/port/usecase"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var fixedTime = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

type walletFixture struct {
	uow        *mpers.MockUnitOfWork
	walletRepo *mpers.MockWalletRepository
	txRepo     *mpers.MockTransactionRepository
	upRepo     *mpers.MockUserPackageRepository
	notifRepo  *mpers.MockNotificationRepository
	pkgRepo    *mpers.MockServicePackageRepository
	settings   *muse.MockSettingsUseCase
	cache      *mpers.MockCache
	svc        *Service
	txCtx      context.Context
}

func newTestLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newWalletFixture(t *testing.T) *walletFixture {
	f := &walletFixture{
		uow:        mpers.NewMockUnitOfWork(t),
		walletRepo: mpers.NewMockWalletRepository(t),
		txRepo:     mpers.NewMockTransactionRepository(t),
		upRepo:     mpers.NewMockUserPackageRepository(t),
		notifRepo:  mpers.NewMockNotificationRepository(t),
		pkgRepo:    mpers.NewMockServicePackageRepository(t),
		settings:   muse.NewMockSettingsUseCase(t),
		cache:      mpers.NewMockCache(t),
		txCtx:      context.WithValue(context.Background(), txKey, "mockTransaction"),
	}

	f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txRepo).Maybe()
	f.uow.On("GetWalletRepository", mock.Anything).Return(f.walletRepo).Maybe()
	f.uow.On("GetUserPackageRepository", mock.Anything).Return(f.upRepo).Maybe()
	f.uow.On("GetNotificationRepository", mock.Anything).Return(f.notifRepo).Maybe()

	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	metrics := mcore.NewMockMetrics(t)
	metrics.On("WalletOperation", mock.Anything, mock.Anything).Maybe()

	f.svc = NewService(f.uow, f.pkgRepo, f.settings, f.cache, timeProvider, newTestLogger(t), metrics, Config{})
	f.svc.newReference = func() string { return "generated-ref" }
	t.Cleanup(f.svc.Shutdown)
	return f
}

// expectCommit sets up a unit of work that commits
func (f *walletFixture) expectCommit() {
	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil).Once()
	f.uow.On("Commit", f.txCtx).Return(nil).Once()
	f.cache.On("DeleteByPrefix", mock.Anything, AdminTransactionsCachePrefix).Return(nil).Once()
}

// expectRollback sets up a unit of work that rolls back
func (f *walletFixture) expectRollback() {
	f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil).Once()
	f.uow.On("Rollback", f.txCtx).Return(nil).Once()
}

func (f *walletFixture) withWallet(balance, held int64) *entity.Wallet {
	w := entity.RestoreWallet(11, 7, balance, held, "USD", fixedTime, fixedTime)
	f.walletRepo.On("GetByUserIDForUpdate", f.txCtx, uint64(7)).Return(w, nil).Once()
	return w
}

func TestRequestDeposit(t *testing.T) {
	req := usecase.DepositRequest{Amount: "20.00", Method: "card", Note: "top up"}

	t.Run("Pending deposit leaves balance untouched", func(t *testing.T) {
		f := newWalletFixture(t)
		f.settings.On("GetSettings", mock.Anything).Return(entity.DefaultWithdrawalSetting(), nil)
		f.expectCommit()
		w := f.withWallet(1000, 0)
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		txn, err := f.svc.RequestDeposit(context.Background(), 7, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, "generated-ref", txn.Reference)
		assert.Equal(t, int64(2000), txn.AmountInCents)
		assert.Equal(t, int64(1000), txn.BalanceAfter)
		assert.Equal(t, int64(1000), w.Balance())
		assert.Nil(t, txn.ProcessedBy)
	})

	t.Run("Deposit under threshold is approved automatically", func(t *testing.T) {
		f := newWalletFixture(t)
		settings := entity.DefaultWithdrawalSetting()
		settings.DepositAutoApproveInCents = 2000
		f.settings.On("GetSettings", mock.Anything).Return(settings, nil)
		f.expectCommit()
		w := f.withWallet(1000, 0)
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		txn, err := f.svc.RequestDeposit(context.Background(), 7, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, txn.Status)
		require.NotNil(t, txn.ProcessedBy)
		assert.Equal(t, entity.SystemActor, *txn.ProcessedBy)
		assert.Equal(t, int64(3000), w.Balance())
		assert.Equal(t, int64(3000), txn.BalanceAfter)
	})

	t.Run("Known reference replays the stored transaction", func(t *testing.T) {
		f := newWalletFixture(t)
		existing := &entity.Transaction{ID: 3, Reference: "client-1", UserID: 7, Type: entity.TypeDeposit, Status: entity.StatusPending}
		f.txRepo.On("ReferenceExists", mock.Anything, "client-1").Return(true, nil)
		f.txRepo.On("GetByReference", mock.Anything, "client-1").Return(existing, nil)

		withRef := req
		withRef.Reference = "client-1"
		txn, err := f.svc.RequestDeposit(context.Background(), 7, withRef)

		require.NoError(t, err)
		assert.Same(t, existing, txn)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Reference owned by another user is a duplicate", func(t *testing.T) {
		f := newWalletFixture(t)
		existing := &entity.Transaction{ID: 3, Reference: "client-1", UserID: 99, Type: entity.TypeDeposit}
		f.txRepo.On("ReferenceExists", mock.Anything, "client-1").Return(true, nil)
		f.txRepo.On("GetByReference", mock.Anything, "client-1").Return(existing, nil)

		withRef := req
		withRef.Reference = "client-1"
		_, err := f.svc.RequestDeposit(context.Background(), 7, withRef)

		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Invalid input is rejected before touching the database", func(t *testing.T) {
		f := newWalletFixture(t)
		_, err := f.svc.RequestDeposit(context.Background(), 7, usecase.DepositRequest{Amount: "-1", Method: ""})

		var vErr *errs.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "amount")
		assert.Contains(t, vErr.Fields, "method")
	})
}

func TestRequestWithdrawal(t *testing.T) {
	req := usecase.WithdrawalRequest{Amount: "100.00", Method: "bank"}

	t.Run("Holds amount plus fee", func(t *testing.T) {
		f := newWalletFixture(t)
		settings := entity.DefaultWithdrawalSetting()
		settings.FeeBasisPoints = 100
		f.settings.On("GetSettings", mock.Anything).Return(settings, nil)
		f.expectCommit()
		w := f.withWallet(100000, 0)
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		txn, err := f.svc.RequestWithdrawal(context.Background(), 7, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, int64(100), txn.FeeInCents)
		assert.Equal(t, int64(89900), w.Balance())
		assert.Equal(t, int64(10100), w.Held())
		assert.Equal(t, int64(89900), txn.BalanceAfter)
	})

	t.Run("Auto approved withdrawal settles the hold", func(t *testing.T) {
		f := newWalletFixture(t)
		settings := entity.DefaultWithdrawalSetting()
		settings.WithdrawAutoApproveInCents = 10000
		f.settings.On("GetSettings", mock.Anything).Return(settings, nil)
		f.expectCommit()
		w := f.withWallet(20000, 0)
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		txn, err := f.svc.RequestWithdrawal(context.Background(), 7, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, txn.Status)
		assert.Equal(t, int64(10000), w.Balance())
		assert.Equal(t, int64(0), w.Held())
	})

	t.Run("Insufficient balance rolls back", func(t *testing.T) {
		f := newWalletFixture(t)
		f.settings.On("GetSettings", mock.Anything).Return(entity.DefaultWithdrawalSetting(), nil)
		f.expectRollback()
		f.withWallet(5000, 0)

		_, err := f.svc.RequestWithdrawal(context.Background(), 7, req)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.walletRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Daily limit counts today's withdrawals", func(t *testing.T) {
		f := newWalletFixture(t)
		settings := entity.DefaultWithdrawalSetting()
		settings.DailyLimitInCents = 15000
		f.settings.On("GetSettings", mock.Anything).Return(settings, nil)
		f.expectRollback()
		f.withWallet(100000, 0)
		midnight := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		f.txRepo.On("SumWithdrawalsSince", f.txCtx, uint64(7), midnight).Return(int64(10000), nil).Once()

		_, err := f.svc.RequestWithdrawal(context.Background(), 7, req)

		assert.ErrorIs(t, err, errs.ErrWithdrawalLimit)
	})

	t.Run("Amount outside bounds", func(t *testing.T) {
		f := newWalletFixture(t)
		f.settings.On("GetSettings", mock.Anything).Return(entity.DefaultWithdrawalSetting(), nil)

		_, err := f.svc.RequestWithdrawal(context.Background(), 7, usecase.WithdrawalRequest{Amount: "1.00", Method: "bank"})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Withdrawals disabled", func(t *testing.T) {
		f := newWalletFixture(t)
		settings := entity.DefaultWithdrawalSetting()
		settings.Enabled = false
		f.settings.On("GetSettings", mock.Anything).Return(settings, nil)

		_, err := f.svc.RequestWithdrawal(context.Background(), 7, req)

		assert.ErrorIs(t, err, errs.ErrWithdrawalsDisabled)
	})
}

func pendingWithdrawal() *entity.Transaction {
	return &entity.Transaction{
		ID:            5,
		Reference:     "w-1",
		UserID:        7,
		WalletID:      11,
		Type:          entity.TypeWithdrawal,
		AmountInCents: 5000,
		FeeInCents:    50,
		Status:        entity.StatusPending,
	}
}

func TestReview(t *testing.T) {
	t.Run("Approve withdrawal settles the hold and notifies", func(t *testing.T) {
		f := newWalletFixture(t)
		txn := pendingWithdrawal()
		f.txRepo.On("GetByID", mock.Anything, uint64(5)).Return(txn, nil).Once()
		f.expectCommit()
		w := f.withWallet(1000, 5050)
		f.txRepo.On("GetByIDForUpdate", f.txCtx, uint64(5)).Return(txn, nil).Once()
		f.txRepo.On("Update", f.txCtx, txn).Return(nil).Once()
		f.notifRepo.On("Create", f.txCtx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == 7 && n.Title == "Withdrawal approved"
		})).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		got, err := f.svc.Approve(context.Background(), 5, 1, "paid")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, got.Status)
		assert.Equal(t, uint64(1), *got.ProcessedBy)
		assert.Equal(t, int64(1000), w.Balance())
		assert.Equal(t, int64(0), w.Held())
		assert.Equal(t, int64(1000), got.BalanceAfter)
	})

	t.Run("Approve deposit credits the wallet", func(t *testing.T) {
		f := newWalletFixture(t)
		txn := &entity.Transaction{ID: 6, UserID: 7, Type: entity.TypeDeposit, AmountInCents: 2500, Status: entity.StatusPending}
		f.txRepo.On("GetByID", mock.Anything, uint64(6)).Return(txn, nil).Once()
		f.expectCommit()
		w := f.withWallet(500, 0)
		f.txRepo.On("GetByIDForUpdate", f.txCtx, uint64(6)).Return(txn, nil).Once()
		f.txRepo.On("Update", f.txCtx, txn).Return(nil).Once()
		f.notifRepo.On("Create", f.txCtx, mock.Anything).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		_, err := f.svc.Approve(context.Background(), 6, 1, "")

		require.NoError(t, err)
		assert.Equal(t, int64(3000), w.Balance())
	})

	t.Run("Reject withdrawal releases the hold", func(t *testing.T) {
		f := newWalletFixture(t)
		txn := pendingWithdrawal()
		f.txRepo.On("GetByID", mock.Anything, uint64(5)).Return(txn, nil).Once()
		f.expectCommit()
		w := f.withWallet(1000, 5050)
		f.txRepo.On("GetByIDForUpdate", f.txCtx, uint64(5)).Return(txn, nil).Once()
		f.txRepo.On("Update", f.txCtx, txn).Return(nil).Once()
		f.notifRepo.On("Create", f.txCtx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Title == "Withdrawal rejected"
		})).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		got, err := f.svc.Reject(context.Background(), 5, 1, "account mismatch")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, got.Status)
		assert.Equal(t, "account mismatch", got.Note)
		assert.Equal(t, int64(6050), w.Balance())
		assert.Equal(t, int64(0), w.Held())
	})

	t.Run("Processed transaction cannot be reviewed again", func(t *testing.T) {
		f := newWalletFixture(t)
		txn := pendingWithdrawal()
		txn.Status = entity.StatusApproved
		f.txRepo.On("GetByID", mock.Anything, uint64(5)).Return(txn, nil).Once()
		f.expectRollback()
		f.withWallet(1000, 0)
		f.txRepo.On("GetByIDForUpdate", f.txCtx, uint64(5)).Return(txn, nil).Once()

		_, err := f.svc.Approve(context.Background(), 5, 1, "")

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		f.txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Reject requires a reason", func(t *testing.T) {
		f := newWalletFixture(t)
		_, err := f.svc.Reject(context.Background(), 5, 1, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		f := newWalletFixture(t)
		f.txRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, errs.ErrTransactionNotFound).Once()
		_, err := f.svc.Approve(context.Background(), 404, 1, "")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestAdjust(t *testing.T) {
	t.Run("Credit records a completed adjustment", func(t *testing.T) {
		f := newWalletFixture(t)
		f.expectCommit()
		w := f.withWallet(100, 0)
		f.txRepo.On("Create", f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypeAdjustment && tx.Status == entity.StatusCompleted && tx.BalanceAfter == 1100
		})).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		txn, err := f.svc.Adjust(context.Background(), 7, 1, usecase.AdjustRequest{Amount: "10.00", Note: "goodwill"})

		require.NoError(t, err)
		assert.Equal(t, "10.00", txn.Amount())
	})

	t.Run("Debit below zero fails", func(t *testing.T) {
		f := newWalletFixture(t)
		f.expectRollback()
		f.withWallet(100, 0)

		_, err := f.svc.Adjust(context.Background(), 7, 1, usecase.AdjustRequest{Amount: "-10.00"})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})
}

func TestPurchasePackage(t *testing.T) {
	pkg := &entity.ServicePackage{ID: 3, Name: "Pro", PriceInCents: 1500, DurationDays: 30, Active: true}

	t.Run("New package", func(t *testing.T) {
		f := newWalletFixture(t)
		f.pkgRepo.On("GetByID", mock.Anything, uint64(3)).Return(pkg, nil)
		f.expectCommit()
		w := f.withWallet(2000, 0)
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.upRepo.On("FindActive", f.txCtx, uint64(7), uint64(3)).Return(nil, nil).Once()
		f.upRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.UserPackage")).Return(nil).Once()
		f.notifRepo.On("Create", f.txCtx, mock.Anything).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		res, err := f.svc.PurchasePackage(context.Background(), 7, 3)

		require.NoError(t, err)
		assert.False(t, res.Extended)
		assert.Equal(t, int64(500), w.Balance())
		assert.Equal(t, entity.StatusCompleted, res.Transaction.Status)
		assert.Equal(t, fixedTime.AddDate(0, 0, 30), res.UserPackage.ExpiresAt)
	})

	t.Run("Active package is extended", func(t *testing.T) {
		f := newWalletFixture(t)
		f.pkgRepo.On("GetByID", mock.Anything, uint64(3)).Return(pkg, nil)
		f.expectCommit()
		w := f.withWallet(2000, 0)
		existing := &entity.UserPackage{ID: 9, UserID: 7, PackageID: 3, ExpiresAt: fixedTime.AddDate(0, 0, 5), Status: entity.UserPackageActive}
		f.txRepo.On("Create", f.txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
		f.upRepo.On("FindActive", f.txCtx, uint64(7), uint64(3)).Return(existing, nil).Once()
		f.upRepo.On("Update", f.txCtx, existing).Return(nil).Once()
		f.notifRepo.On("Create", f.txCtx, mock.Anything).Return(nil).Once()
		f.walletRepo.On("Update", f.txCtx, w).Return(nil).Once()

		res, err := f.svc.PurchasePackage(context.Background(), 7, 3)

		require.NoError(t, err)
		assert.True(t, res.Extended)
		assert.Equal(t, fixedTime.AddDate(0, 0, 35), existing.ExpiresAt)
	})

	t.Run("Inactive package", func(t *testing.T) {
		f := newWalletFixture(t)
		inactive := *pkg
		inactive.Active = false
		f.pkgRepo.On("GetByID", mock.Anything, uint64(3)).Return(&inactive, nil)

		_, err := f.svc.PurchasePackage(context.Background(), 7, 3)

		assert.ErrorIs(t, err, errs.ErrPackageInactive)
	})

	t.Run("Not enough funds", func(t *testing.T) {
		f := newWalletFixture(t)
		f.pkgRepo.On("GetByID", mock.Anything, uint64(3)).Return(pkg, nil)
		f.expectRollback()
		f.withWallet(1000, 0)

		_, err := f.svc.PurchasePackage(context.Background(), 7, 3)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})
}

func TestListAllTransactions(t *testing.T) {
	filter := persistence.TransactionFilter{Status: entity.StatusPending}
	normalized := persistence.TransactionFilter{Status: entity.StatusPending, Page: 1, PageSize: 20}
	key := AdminTransactionsCachePrefix + filterKey(normalized)

	t.Run("Cache hit", func(t *testing.T) {
		f := newWalletFixture(t)
		f.cache.On("Get", mock.Anything, key, mock.AnythingOfType("*usecase.TransactionPage")).
			Run(func(args mock.Arguments) {
				page := args.Get(2).(*usecase.TransactionPage)
				page.Total = 42
			}).Return(true, nil).Once()

		page, err := f.svc.ListAllTransactions(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, int64(42), page.Total)
		f.txRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		f := newWalletFixture(t)
		items := []*entity.Transaction{pendingWithdrawal()}
		f.cache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		f.txRepo.On("List", mock.Anything, normalized).Return(items, int64(1), nil).Once()
		f.cache.On("Set", mock.Anything, key, mock.AnythingOfType("*usecase.TransactionPage"), DefaultCacheTTL).Return(nil).Once()

		page, err := f.svc.ListAllTransactions(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Cache failure falls through to the database", func(t *testing.T) {
		f := newWalletFixture(t)
		f.cache.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down")).Once()
		f.txRepo.On("List", mock.Anything, normalized).Return([]*entity.Transaction{}, int64(0), nil).Once()
		f.cache.On("Set", mock.Anything, key, mock.Anything, DefaultCacheTTL).Return(errors.New("redis down")).Once()

		_, err := f.svc.ListAllTransactions(context.Background(), filter)

		require.NoError(t, err)
	})

	t.Run("User listing rejects unknown status", func(t *testing.T) {
		f := newWalletFixture(t)
		_, err := f.svc.ListTransactions(context.Background(), persistence.TransactionFilter{UserID: 7, Status: "lost"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
