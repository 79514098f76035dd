package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okovalenko/savings-tracker/internal/currency"
	"github.com/okovalenko/savings-tracker/internal/storage/transaction"
)

// TransactionType tells the direction of a transaction. The persisted
// amount is always a magnitude; the sign is derived from the type.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

func (t TransactionType) Valid() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        int64
	Amount    decimal.Decimal
	Date      string // YYYY-MM-DD
	Currency  currency.Currency
	Type      TransactionType
	Comment   string
	CreatedAt time.Time
	IsDebt    bool
	DebtTo    string
	IsRepaid  bool
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for deposits, negative for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionInput is the caller-facing input for creating a transaction.
type TransactionInput struct {
	Amount   decimal.Decimal
	Date     string
	Currency currency.Currency
	Type     TransactionType
	Comment  string
	IsDebt   bool
	DebtTo   string
}

// TransactionUpdate is a merge-patch for an existing transaction.
// Nil fields are left untouched.
type TransactionUpdate struct {
	Amount   *decimal.Decimal
	Date     *string
	Currency *currency.Currency
	Type     *TransactionType
	Comment  *string
	IsDebt   *bool
	DebtTo   *string
	IsRepaid *bool
}

func fromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		Amount:    row.Amount,
		Date:      row.Date,
		Currency:  currency.Currency(row.Currency),
		Type:      TransactionType(row.Type),
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
		IsDebt:    row.IsDebt,
		DebtTo:    row.DebtTo,
		IsRepaid:  row.IsRepaid,
	}
}

func fromStorageAll(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = fromStorage(row)
	}
	return converted
}
