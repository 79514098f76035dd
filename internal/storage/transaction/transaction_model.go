package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a persisted transaction record. Amount is a
// non-negative magnitude; direction comes from Type.
type Transaction struct {
	ID        int64
	Amount    decimal.Decimal
	Date      string // YYYY-MM-DD
	Currency  string
	Type      string // "deposit" or "withdrawal"
	Comment   string
	CreatedAt time.Time
	IsDebt    bool
	DebtTo    string
	IsRepaid  bool
}

// TransactionCreate is the input for inserting a new transaction.
// The store assigns the id.
type TransactionCreate struct {
	Amount    decimal.Decimal
	Date      string
	Currency  string
	Type      string
	Comment   string
	CreatedAt time.Time // defaults to now if zero
	IsDebt    bool
	DebtTo    string
	IsRepaid  bool
}

// TransactionPatch carries a merge-patch update. Nil fields are left
// untouched; the id is never changed.
type TransactionPatch struct {
	Amount   *decimal.Decimal
	Date     *string
	Currency *string
	Type     *string
	Comment  *string
	IsDebt   *bool
	DebtTo   *string
	IsRepaid *bool
}

// ITransactionsTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionsTable --inpackage
type ITransactionsTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	All(ctx context.Context) ([]*Transaction, error)
	ByDateRange(ctx context.Context, start, end string) ([]*Transaction, error)
	ByCurrency(ctx context.Context, currency string) ([]*Transaction, error)
	Update(ctx context.Context, id int64, patch *TransactionPatch) error
	Delete(ctx context.Context, id int64) error
}
