package service

import (
	"context"
	"time"

	"github.com/okovalenko/savings-tracker/internal/storage"
	"github.com/okovalenko/savings-tracker/internal/storage/transaction"
)

const dateLayout = "2006-01-02"

// TransactionService handles transaction create/read/update/delete logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// CreateTransaction validates the input and inserts a new transaction,
// returning its store-assigned id.
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) (int64, error) {
	if err := validateInput(&input); err != nil {
		return 0, err
	}

	storageCreate := &transaction.TransactionCreate{
		Amount:    input.Amount,
		Date:      input.Date,
		Currency:  string(input.Currency),
		Type:      string(input.Type),
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
		IsDebt:    input.IsDebt,
	}
	if input.IsDebt {
		storageCreate.DebtTo = input.DebtTo
	}

	return s.storage.Transactions.Insert(ctx, storageCreate)
}

// ListTransactions returns all transactions ordered by date descending.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	return fromStorageAll(rows), nil
}

// UpdateTransaction applies a merge-patch to the transaction with the
// given id. Provided fields are validated before any write.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) error {
	if err := validateUpdate(&update); err != nil {
		return err
	}

	patch := &transaction.TransactionPatch{
		Amount:   update.Amount,
		Date:     update.Date,
		Comment:  update.Comment,
		IsDebt:   update.IsDebt,
		DebtTo:   update.DebtTo,
		IsRepaid: update.IsRepaid,
	}
	if update.Currency != nil {
		cur := string(*update.Currency)
		patch.Currency = &cur
	}
	if update.Type != nil {
		typ := string(*update.Type)
		patch.Type = &typ
	}

	return s.storage.Transactions.Update(ctx, id, patch)
}

// DeleteTransaction permanently removes the transaction with the given id.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.storage.Transactions.Delete(ctx, id)
}

// ToggleDebtRepaid flips the repayment flag of a debt transaction. No
// other field changes, so toggling twice restores the original record.
func (s *TransactionService) ToggleDebtRepaid(ctx context.Context, id int64) error {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !row.IsDebt {
		return &ValidationError{Field: "isDebt", Reason: "transaction is not a debt"}
	}

	repaid := !row.IsRepaid
	return s.storage.Transactions.Update(ctx, id, &transaction.TransactionPatch{
		IsRepaid: &repaid,
	})
}

func validateInput(input *TransactionInput) error {
	if !input.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := validateDate(input.Date); err != nil {
		return err
	}
	if !input.Currency.Valid() {
		return &ValidationError{Field: "currency", Reason: "unknown currency " + string(input.Currency)}
	}
	if !input.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be deposit or withdrawal"}
	}
	return nil
}

func validateUpdate(update *TransactionUpdate) error {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if update.Date != nil {
		if err := validateDate(*update.Date); err != nil {
			return err
		}
	}
	if update.Currency != nil && !update.Currency.Valid() {
		return &ValidationError{Field: "currency", Reason: "unknown currency " + string(*update.Currency)}
	}
	if update.Type != nil && !update.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be deposit or withdrawal"}
	}
	return nil
}

func validateDate(date string) error {
	if len(date) != len(dateLayout) {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return nil
}
