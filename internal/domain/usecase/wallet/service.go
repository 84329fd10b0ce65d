package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// Admin listing cache
const (
	AdminTransactionsCachePrefix = "admin:transactions:"
	DefaultCacheTTL              = 60 * time.Second
)

// Service implements usecase.WalletUseCase on top of the per-user manager and a unit of work
type Service struct {
	uow          persistence.UnitOfWork
	packages     persistence.ServicePackageRepository
	settings     usecase.SettingsUseCase
	cache        persistence.Cache
	manager      *WalletManager
	idempotency  *IdempotencyHandler
	validator    *RequestValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	currency     string
	cacheTTL     time.Duration
	newReference func() string
}

// Config carries the tunables of the wallet service
type Config struct {
	QueueSize int
	Currency  string
	CacheTTL  time.Duration
}

// NewService creates a new wallet service. cache may be nil.
func NewService(
	uow persistence.UnitOfWork,
	packages persistence.ServicePackageRepository,
	settings usecase.SettingsUseCase,
	cache persistence.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	cfg Config,
) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Currency == "" {
		cfg.Currency = entity.DefaultCurrency
	}
	return &Service{
		uow:          uow,
		packages:     packages,
		settings:     settings,
		cache:        cache,
		manager:      NewWalletManager(logger, cfg.QueueSize),
		idempotency:  NewIdempotencyHandler(uow.GetTransactionRepository(context.Background())),
		validator:    NewRequestValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		currency:     cfg.Currency,
		cacheTTL:     cfg.CacheTTL,
		newReference: func() string { return uuid.New().String() },
	}
}

// GetWallet returns the wallet of a user, creating it on first access
func (s *Service) GetWallet(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	repo := s.uow.GetWalletRepository(ctx)
	w, err := repo.GetByUserID(ctx, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, errs.ErrWalletNotFound) {
		return nil, err
	}

	w, err = entity.NewWallet(userID, s.currency, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, w); err != nil {
		// Lost a creation race with a concurrent request
		if errors.Is(err, errs.ErrConstraintViolation) || errors.Is(err, errs.ErrDuplicateTransaction) {
			return repo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return w, nil
}

// RequestDeposit records a deposit, approving it at once when it is under the auto-approve threshold
func (s *Service) RequestDeposit(ctx context.Context, userID uint64, req usecase.DepositRequest) (*entity.Transaction, error) {
	cents, err := s.validator.ValidateDeposit(userID, req)
	if err != nil {
		return nil, err
	}
	if txn, found, err := s.idempotency.CheckIdempotency(ctx, userID, entity.TypeDeposit, req.Reference); err != nil || found {
		return txn, err
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	reference := s.referenceOr(req.Reference)
	var result *entity.Transaction
	err = s.mutate(ctx, userID, "deposit", func(txCtx context.Context, w *entity.Wallet) error {
		txn, err := entity.NewTransaction(userID, w.ID, reference, entity.TypeDeposit, cents, s.timeProvider,
			entity.WithMethod(req.Method, req.Note))
		if err != nil {
			return err
		}
		txn.BalanceAfter = w.Balance()

		if settings.AutoApproveDeposit(cents) {
			if err := w.Credit(cents, s.timeProvider); err != nil {
				return err
			}
			if err := txn.Approve(entity.SystemActor, "", w.Balance(), s.timeProvider); err != nil {
				return err
			}
		}

		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RequestWithdrawal holds amount plus fee and records a pending withdrawal
func (s *Service) RequestWithdrawal(ctx context.Context, userID uint64, req usecase.WithdrawalRequest) (*entity.Transaction, error) {
	cents, err := s.validator.ValidateWithdrawal(userID, req)
	if err != nil {
		return nil, err
	}
	if txn, found, err := s.idempotency.CheckIdempotency(ctx, userID, entity.TypeWithdrawal, req.Reference); err != nil || found {
		return txn, err
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := settings.CheckWithdrawal(cents); err != nil {
		return nil, err
	}

	fee := settings.FeeFor(cents)
	reference := s.referenceOr(req.Reference)
	var result *entity.Transaction
	err = s.mutate(ctx, userID, "withdrawal", func(txCtx context.Context, w *entity.Wallet) error {
		txRepo := s.uow.GetTransactionRepository(txCtx)

		if settings.DailyLimitInCents > 0 {
			today, err := txRepo.SumWithdrawalsSince(txCtx, userID, startOfDay(s.timeProvider.Now()))
			if err != nil {
				return err
			}
			if !settings.WithinDailyLimit(today, cents) {
				return errs.NewTransactionError(reference, userID, string(entity.TypeWithdrawal), "", entity.AmountInCentsToString(cents),
					"daily limit of "+entity.AmountInCentsToString(settings.DailyLimitInCents)+" exceeded", errs.ErrWithdrawalLimit)
			}
		}

		txn, err := entity.NewTransaction(userID, w.ID, reference, entity.TypeWithdrawal, cents, s.timeProvider,
			entity.WithFee(fee), entity.WithMethod(req.Method, req.Note))
		if err != nil {
			return err
		}
		if err := w.Hold(txn.TotalInCents(), s.timeProvider); err != nil {
			return err
		}
		txn.BalanceAfter = w.Balance()

		if settings.AutoApproveWithdrawal(cents) {
			if err := w.SettleHold(txn.TotalInCents(), s.timeProvider); err != nil {
				return err
			}
			if err := txn.Approve(entity.SystemActor, "", w.Balance(), s.timeProvider); err != nil {
				return err
			}
		}

		if err := txRepo.Create(txCtx, txn); err != nil {
			return err
		}
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Approve settles a pending deposit or withdrawal
func (s *Service) Approve(ctx context.Context, txID, adminID uint64, note string) (*entity.Transaction, error) {
	return s.review(ctx, txID, adminID, "approve", func(txn *entity.Transaction, w *entity.Wallet) error {
		if err := txn.Approve(adminID, note, 0, s.timeProvider); err != nil {
			return err
		}
		switch txn.Type {
		case entity.TypeDeposit:
			if err := w.Credit(txn.AmountInCents, s.timeProvider); err != nil {
				return err
			}
		case entity.TypeWithdrawal:
			if err := w.SettleHold(txn.TotalInCents(), s.timeProvider); err != nil {
				return err
			}
		default:
			return errs.ErrInvalidStateTransition
		}
		txn.BalanceAfter = w.Balance()
		return nil
	})
}

// Reject cancels a pending deposit or withdrawal, releasing any hold
func (s *Service) Reject(ctx context.Context, txID, adminID uint64, reason string) (*entity.Transaction, error) {
	if err := s.validator.ValidateReason(reason); err != nil {
		return nil, err
	}
	return s.review(ctx, txID, adminID, "reject", func(txn *entity.Transaction, w *entity.Wallet) error {
		if err := txn.Reject(adminID, reason, 0, s.timeProvider); err != nil {
			return err
		}
		if txn.Type == entity.TypeWithdrawal {
			if err := w.ReleaseHold(txn.TotalInCents(), s.timeProvider); err != nil {
				return err
			}
		}
		txn.BalanceAfter = w.Balance()
		return nil
	})
}

// review locks a pending transaction on its owner's queue, applies decide and notifies the owner
func (s *Service) review(
	ctx context.Context,
	txID, adminID uint64,
	operation string,
	decide func(txn *entity.Transaction, w *entity.Wallet) error,
) (*entity.Transaction, error) {
	if adminID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	existing, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	var result *entity.Transaction
	err = s.mutate(ctx, existing.UserID, operation, func(txCtx context.Context, w *entity.Wallet) error {
		txRepo := s.uow.GetTransactionRepository(txCtx)
		txn, err := txRepo.GetByIDForUpdate(txCtx, txID)
		if err != nil {
			return err
		}
		if err := decide(txn, w); err != nil {
			return err
		}
		if err := txRepo.Update(txCtx, txn); err != nil {
			return err
		}

		n, err := entity.NewNotification(txn.UserID, entity.NotificationWallet,
			reviewTitle(txn), reviewBody(txn), s.timeProvider)
		if err != nil {
			return err
		}
		if err := s.uow.GetNotificationRepository(txCtx).Create(txCtx, n); err != nil {
			return err
		}
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction reviewed", map[string]any{
		"transaction_id": result.ID,
		"reference":      result.Reference,
		"status":         string(result.Status),
		"admin_id":       adminID,
	})
	return result, nil
}

// Adjust credits or debits a wallet on behalf of an admin
func (s *Service) Adjust(ctx context.Context, userID, adminID uint64, req usecase.AdjustRequest) (*entity.Transaction, error) {
	cents, err := s.validator.ValidateAdjustment(userID, adminID, req)
	if err != nil {
		return nil, err
	}

	var result *entity.Transaction
	err = s.mutate(ctx, userID, "adjust", func(txCtx context.Context, w *entity.Wallet) error {
		var err error
		if cents > 0 {
			err = w.Credit(cents, s.timeProvider)
		} else {
			err = w.Debit(-cents, s.timeProvider)
		}
		if err != nil {
			return err
		}

		txn, err := entity.NewTransaction(userID, w.ID, s.newReference(), entity.TypeAdjustment, cents, s.timeProvider,
			entity.WithMethod("admin", req.Note))
		if err != nil {
			return err
		}
		if err := txn.Complete(adminID, w.Balance(), s.timeProvider); err != nil {
			return err
		}
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PurchasePackage pays for a package from the wallet and activates or extends it
func (s *Service) PurchasePackage(ctx context.Context, userID, packageID uint64) (*usecase.PurchaseResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, errs.ErrPackageInactive
	}

	result := &usecase.PurchaseResult{}
	err = s.mutate(ctx, userID, "purchase", func(txCtx context.Context, w *entity.Wallet) error {
		if pkg.PriceInCents > 0 {
			if err := w.Debit(pkg.PriceInCents, s.timeProvider); err != nil {
				return err
			}
			txn, err := entity.NewTransaction(userID, w.ID, s.newReference(), entity.TypePurchase, pkg.PriceInCents, s.timeProvider,
				entity.WithMethod("wallet", pkg.Name),
				entity.WithMetadata(map[string]any{"package_id": pkg.ID, "package_name": pkg.Name}))
			if err != nil {
				return err
			}
			if err := txn.Complete(userID, w.Balance(), s.timeProvider); err != nil {
				return err
			}
			if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
				return err
			}
			result.Transaction = txn
		}

		upRepo := s.uow.GetUserPackageRepository(txCtx)
		existing, err := upRepo.FindActive(txCtx, userID, pkg.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Extend(pkg, s.timeProvider)
			if err := upRepo.Update(txCtx, existing); err != nil {
				return err
			}
			result.UserPackage = existing
			result.Extended = true
		} else {
			up := entity.NewUserPackage(userID, pkg, s.timeProvider)
			if err := upRepo.Create(txCtx, up); err != nil {
				return err
			}
			result.UserPackage = up
		}

		n, err := entity.NewNotification(userID, entity.NotificationPackage, "Package activated",
			fmt.Sprintf("%s is active until %s", pkg.Name, result.UserPackage.ExpiresAt.Format("2006-01-02")), s.timeProvider)
		if err != nil {
			return err
		}
		return s.uow.GetNotificationRepository(txCtx).Create(txCtx, n)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListTransactions lists transactions of one user
func (s *Service) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) (*usecase.TransactionPage, error) {
	if filter.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.list(ctx, filter)
}

// ListAllTransactions lists transactions across users for admins, served from cache when possible
func (s *Service) ListAllTransactions(ctx context.Context, filter persistence.TransactionFilter) (*usecase.TransactionPage, error) {
	filter = normalizeFilter(filter)
	key := AdminTransactionsCachePrefix + filterKey(filter)

	if s.cache != nil {
		var cached usecase.TransactionPage
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Failed to read transactions from cache", map[string]any{"key": key, "error": err.Error()})
		} else if found {
			return &cached, nil
		}
	}

	page, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, page, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache transactions", map[string]any{"key": key, "error": err.Error()})
		}
	}
	return page, nil
}

func (s *Service) list(ctx context.Context, filter persistence.TransactionFilter) (*usecase.TransactionPage, error) {
	filter = normalizeFilter(filter)
	if filter.Type != "" && !entity.IsValidTransactionType(string(filter.Type)) {
		return nil, errs.ErrInvalidTransactionType
	}
	if filter.Status != "" && !entity.IsValidTransactionStatus(string(filter.Status)) {
		v := errs.NewValidationError()
		v.Add("status", "is not a known status")
		return nil, v
	}
	items, total, err := s.uow.GetTransactionRepository(ctx).List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &usecase.TransactionPage{Items: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

// Shutdown drains the per-user queues
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

// mutate runs fn on the user's queue inside one database transaction with the wallet row locked.
// The wallet is saved after fn succeeds. Any error rolls everything back.
func (s *Service) mutate(ctx context.Context, userID uint64, operation string, fn func(txCtx context.Context, w *entity.Wallet) error) error {
	err := s.manager.Execute(ctx, userID, operation, func(ctx context.Context) (err error) {
		txCtx, err := s.uow.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
					s.logger.Error("Failed to rollback wallet operation", map[string]any{
						"user_id":   userID,
						"operation": operation,
						"error":     rbErr.Error(),
					})
				}
			}
		}()

		w, err := s.lockWallet(txCtx, userID)
		if err != nil {
			return err
		}
		if err = fn(txCtx, w); err != nil {
			return err
		}
		if err = s.uow.GetWalletRepository(txCtx).Update(txCtx, w); err != nil {
			return err
		}
		return s.uow.Commit(txCtx)
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
		s.logger.Warn("Wallet operation failed", map[string]any{
			"user_id":   userID,
			"operation": operation,
			"error":     err.Error(),
		})
	} else {
		s.invalidateAdminCache(ctx)
	}
	s.metrics.WalletOperation(operation, outcome)
	return err
}

// lockWallet loads the wallet row with a lock, creating the wallet inside the transaction when missing
func (s *Service) lockWallet(txCtx context.Context, userID uint64) (*entity.Wallet, error) {
	repo := s.uow.GetWalletRepository(txCtx)
	w, err := repo.GetByUserIDForUpdate(txCtx, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, errs.ErrWalletNotFound) {
		return nil, err
	}
	w, err = entity.NewWallet(userID, s.currency, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(txCtx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) invalidateAdminCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, AdminTransactionsCachePrefix); err != nil {
		s.logger.Warn("Failed to invalidate transaction cache", map[string]any{"error": err.Error()})
	}
}

func (s *Service) referenceOr(reference string) string {
	if reference != "" {
		return reference
	}
	return s.newReference()
}

func normalizeFilter(f persistence.TransactionFilter) persistence.TransactionFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > usecase.MaxPageSize {
		f.PageSize = usecase.MaxPageSize
	}
	return f
}

func filterKey(f persistence.TransactionFilter) string {
	var from, to int64
	if f.From != nil {
		from = f.From.Unix()
	}
	if f.To != nil {
		to = f.To.Unix()
	}
	return fmt.Sprintf("u%d:t%s:s%s:f%d:e%d:p%d:n%d", f.UserID, f.Type, f.Status, from, to, f.Page, f.PageSize)
}

// startOfDay returns midnight UTC of t's calendar day
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func reviewTitle(txn *entity.Transaction) string {
	return fmt.Sprintf("%s %s", capitalize(string(txn.Type)), txn.Status)
}

func reviewBody(txn *entity.Transaction) string {
	body := fmt.Sprintf("Your %s of %s was %s.", txn.Type, txn.Amount(), txn.Status)
	if txn.Status == entity.StatusRejected && txn.Note != "" {
		body += " Reason: " + txn.Note
	}
	return body
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
