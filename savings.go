// Package savings is the embedded core of a personal finance tracker:
// deposit/withdrawal transactions in multiple currencies, informal debts
// against named counterparties, and balance/statistics derivations over
// a local database. There is no server and no wire protocol; the
// presentation layer calls these functions directly and re-reads derived
// views after every mutation.
package savings

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/okovalenko/savings-tracker/internal/config"
	"github.com/okovalenko/savings-tracker/internal/currency"
	"github.com/okovalenko/savings-tracker/internal/logging"
	"github.com/okovalenko/savings-tracker/internal/service"
	"github.com/okovalenko/savings-tracker/internal/storage"
	"github.com/okovalenko/savings-tracker/internal/storage/transaction"
)

// Re-exported so callers only import this package.
type (
	Transaction       = service.Transaction
	TransactionInput  = service.TransactionInput
	TransactionUpdate = service.TransactionUpdate
	BalanceEntry      = service.BalanceEntry
	Stats             = service.Stats
	DebtGroup         = service.DebtGroup
	DebtFilter        = service.DebtFilter
	SortOrder         = service.SortOrder
	Currency          = currency.Currency
	Config            = config.Config
	ValidationError   = service.ValidationError
)

// ErrNotFound reports an update or delete against an id that does not
// exist in the store.
var ErrNotFound = transaction.ErrNotFound

const (
	SortAsc    = service.SortAsc
	SortDesc   = service.SortDesc
	DebtActive = service.DebtActive
	DebtRepaid = service.DebtRepaid
	DebtAll    = service.DebtAll
)

// Tracker owns the database handle and the business logic services.
type Tracker struct {
	logger *logrus.Logger
	store  *storage.Storage
	svc    *service.Service
}

// Open opens the tracker over the database named by cfg. A nil cfg loads
// configuration from the environment.
func Open(cfg *config.Config) (*Tracker, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := logging.SetupLogging(cfg.LogLevel)

	store, err := storage.Open(cfg)
	if err != nil {
		logger.WithError(err).Error("Tracker.Open.storage")
		return nil, err
	}

	logger.WithField("databasePath", cfg.DatabasePath).Info("Tracker.Open.Complete")

	return &Tracker{
		logger: logger,
		store:  store,
		svc:    service.NewService(store),
	}, nil
}

func (t *Tracker) Close() error {
	return t.store.Close()
}

// ListTransactions returns all transactions ordered by date descending.
func (t *Tracker) ListTransactions(ctx context.Context) ([]Transaction, error) {
	txs, err := t.svc.Transaction.ListTransactions(ctx)
	if err != nil {
		t.logger.WithError(err).Error("Tracker.ListTransactions.Error")
		return nil, err
	}
	return txs, nil
}

// GetStats derives the aggregate statistics from a fresh read of the
// transaction set.
func (t *Tracker) GetStats(ctx context.Context) (*Stats, error) {
	opLog := logging.NewOpLog(t.logger)
	stopTimer := opLog.AddTiming("statsMs")
	stats, err := t.svc.Report.Stats(ctx)
	stopTimer()

	if err != nil {
		opLog.Log().WithError(err).Error("Tracker.GetStats.Error")
		return nil, err
	}

	opLog.AddField("transactionCount", stats.TotalCount)
	opLog.Log().Info("Tracker.GetStats.Complete")
	return stats, nil
}

// GetBalanceLedger derives the per-date balance entries in the requested
// presentation order.
func (t *Tracker) GetBalanceLedger(ctx context.Context, order SortOrder) ([]BalanceEntry, error) {
	opLog := logging.NewOpLog(t.logger)
	stopTimer := opLog.AddTiming("ledgerMs")
	entries, err := t.svc.Report.BalanceLedger(ctx, order)
	stopTimer()

	if err != nil {
		opLog.Log().WithError(err).Error("Tracker.GetBalanceLedger.Error")
		return nil, err
	}

	opLog.AddField("entryCount", len(entries))
	opLog.Log().Info("Tracker.GetBalanceLedger.Complete")
	return entries, nil
}

// GetCurrentBalances returns the running balances as of the
// chronologically last ledger entry.
func (t *Tracker) GetCurrentBalances(ctx context.Context) (map[Currency]decimal.Decimal, error) {
	entries, err := t.svc.Report.BalanceLedger(ctx, SortAsc)
	if err != nil {
		return nil, err
	}
	return service.LatestBalances(entries), nil
}

// GetDebtGroups groups debt transactions by counterparty, filtered by
// repayment status.
func (t *Tracker) GetDebtGroups(ctx context.Context, filter DebtFilter) ([]DebtGroup, error) {
	groups, err := t.svc.Debt.DebtGroups(ctx, filter)
	if err != nil {
		t.logger.WithError(err).Error("Tracker.GetDebtGroups.Error")
		return nil, err
	}
	return groups, nil
}

// CreateTransaction validates and persists a new transaction.
func (t *Tracker) CreateTransaction(ctx context.Context, input TransactionInput) (int64, error) {
	id, err := t.svc.Transaction.CreateTransaction(ctx, input)
	if err != nil {
		t.logger.WithError(err).Error("Tracker.CreateTransaction.Error")
		return 0, err
	}
	t.logger.WithField("id", id).Info("Tracker.CreateTransaction.Complete")
	return id, nil
}

// UpdateTransaction merge-patches an existing transaction.
func (t *Tracker) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) error {
	if err := t.svc.Transaction.UpdateTransaction(ctx, id, update); err != nil {
		t.logger.WithError(err).WithField("id", id).Error("Tracker.UpdateTransaction.Error")
		return err
	}
	return nil
}

// DeleteTransaction permanently removes a transaction.
func (t *Tracker) DeleteTransaction(ctx context.Context, id int64) error {
	if err := t.svc.Transaction.DeleteTransaction(ctx, id); err != nil {
		t.logger.WithError(err).WithField("id", id).Error("Tracker.DeleteTransaction.Error")
		return err
	}
	return nil
}

// ToggleDebtRepaid flips the repayment flag of a debt transaction.
func (t *Tracker) ToggleDebtRepaid(ctx context.Context, id int64) error {
	if err := t.svc.Transaction.ToggleDebtRepaid(ctx, id); err != nil {
		t.logger.WithError(err).WithField("id", id).Error("Tracker.ToggleDebtRepaid.Error")
		return err
	}
	return nil
}
