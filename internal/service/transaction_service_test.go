package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/okovalenko/savings-tracker/internal/currency"
	"github.com/okovalenko/savings-tracker/internal/storage"
	"github.com/okovalenko/savings-tracker/internal/storage/transaction"
)

func newTestService(t *testing.T) (*TransactionService, *transaction.MockITransactionsTable) {
	t.Helper()
	mockTable := transaction.NewMockITransactionsTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store)
	return svc, mockTable
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockTable := newTestService(t)

	amount := decimal.RequireFromString("42.50")

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Amount.Equal(amount) &&
			c.Date == "2024-06-01" &&
			c.Currency == "USD" &&
			c.Type == "deposit" &&
			c.Comment == "salary" &&
			!c.CreatedAt.IsZero()
	})).Return(int64(7), nil)

	id, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Amount:   amount,
		Date:     "2024-06-01",
		Currency: currency.USD,
		Type:     TypeDeposit,
		Comment:  "salary",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestCreateTransaction_ValidationRejectsBeforeWrite(t *testing.T) {
	tests := []struct {
		name  string
		input TransactionInput
		field string
	}{
		{
			name:  "missing amount",
			input: TransactionInput{Date: "2024-06-01", Currency: currency.USD, Type: TypeDeposit},
			field: "amount",
		},
		{
			name: "negative amount",
			input: TransactionInput{
				Amount: decimal.RequireFromString("-5"), Date: "2024-06-01",
				Currency: currency.USD, Type: TypeDeposit,
			},
			field: "amount",
		},
		{
			name: "malformed date",
			input: TransactionInput{
				Amount: decimal.RequireFromString("5"), Date: "01/06/2024",
				Currency: currency.USD, Type: TypeDeposit,
			},
			field: "date",
		},
		{
			name: "unknown currency",
			input: TransactionInput{
				Amount: decimal.RequireFromString("5"), Date: "2024-06-01",
				Currency: "CHF", Type: TypeDeposit,
			},
			field: "currency",
		},
		{
			name: "unknown type",
			input: TransactionInput{
				Amount: decimal.RequireFromString("5"), Date: "2024-06-01",
				Currency: currency.USD, Type: "transfer",
			},
			field: "type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// No Insert expectation: validation must fail before any write.
			svc, _ := newTestService(t)

			_, err := svc.CreateTransaction(context.Background(), tc.input)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestCreateTransaction_DebtToIgnoredForNonDebt(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return !c.IsDebt && c.DebtTo == ""
	})).Return(int64(1), nil)

	_, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Amount:   decimal.RequireFromString("10"),
		Date:     "2024-06-01",
		Currency: currency.USD,
		Type:     TypeDeposit,
		DebtTo:   "Alex", // meaningless without IsDebt
	})

	assert.NoError(t, err)
}

func TestCreateTransaction_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(int64(0), &transaction.StorageError{Op: "transactions.insert", Err: errors.New("disk full")})

	id, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Amount:   decimal.RequireFromString("10"),
		Date:     "2024-06-01",
		Currency: currency.USD,
		Type:     TypeDeposit,
	})

	var storageErr *transaction.StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Zero(t, id)
}

// -- ListTransactions tests --

func TestListTransactions_ConvertsRows(t *testing.T) {
	svc, mockTable := newTestService(t)

	rows := []*transaction.Transaction{
		{
			ID:       2,
			Amount:   decimal.RequireFromString("20"),
			Date:     "2024-06-02",
			Currency: "EUR",
			Type:     "withdrawal",
			Comment:  "rent",
			IsDebt:   true,
			DebtTo:   "Alex",
		},
		{
			ID:       1,
			Amount:   decimal.RequireFromString("10"),
			Date:     "2024-06-01",
			Currency: "USD",
			Type:     "deposit",
		},
	}
	mockTable.EXPECT().All(mock.Anything).Return(rows, nil)

	txs, err := svc.ListTransactions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, currency.EUR, txs[0].Currency)
	assert.Equal(t, TypeWithdrawal, txs[0].Type)
	assert.True(t, txs[0].IsDebt)
	assert.Equal(t, "Alex", txs[0].DebtTo)
	assert.Equal(t, TypeDeposit, txs[1].Type)
}

// -- UpdateTransaction tests --

func TestUpdateTransaction_PartialPatch(t *testing.T) {
	svc, mockTable := newTestService(t)

	comment := "corrected"
	cur := currency.PLN

	mockTable.EXPECT().Update(mock.Anything, int64(3), mock.MatchedBy(func(p *transaction.TransactionPatch) bool {
		return p.Amount == nil &&
			p.Comment != nil && *p.Comment == "corrected" &&
			p.Currency != nil && *p.Currency == "PLN" &&
			p.IsRepaid == nil
	})).Return(nil)

	err := svc.UpdateTransaction(context.Background(), 3, TransactionUpdate{
		Comment:  &comment,
		Currency: &cur,
	})

	assert.NoError(t, err)
}

func TestUpdateTransaction_ValidatesProvidedFields(t *testing.T) {
	svc, _ := newTestService(t)

	badAmount := decimal.RequireFromString("0")
	err := svc.UpdateTransaction(context.Background(), 3, TransactionUpdate{Amount: &badAmount})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Update(mock.Anything, int64(99), mock.Anything).
		Return(transaction.ErrNotFound)

	comment := "x"
	err := svc.UpdateTransaction(context.Background(), 99, TransactionUpdate{Comment: &comment})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

// -- DeleteTransaction tests --

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().Delete(mock.Anything, int64(42)).Return(transaction.ErrNotFound)

	err := svc.DeleteTransaction(context.Background(), 42)

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

// -- ToggleDebtRepaid tests --

func TestToggleDebtRepaid_MarksRepaid(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(5)).Return(&transaction.Transaction{
		ID:     5,
		IsDebt: true,
	}, nil)
	mockTable.EXPECT().Update(mock.Anything, int64(5), mock.MatchedBy(func(p *transaction.TransactionPatch) bool {
		return p.IsRepaid != nil && *p.IsRepaid &&
			p.Amount == nil && p.Date == nil && p.Currency == nil &&
			p.Type == nil && p.Comment == nil && p.IsDebt == nil && p.DebtTo == nil
	})).Return(nil)

	err := svc.ToggleDebtRepaid(context.Background(), 5)

	assert.NoError(t, err)
}

func TestToggleDebtRepaid_MarksUnrepaid(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(5)).Return(&transaction.Transaction{
		ID:       5,
		IsDebt:   true,
		IsRepaid: true,
	}, nil)
	mockTable.EXPECT().Update(mock.Anything, int64(5), mock.MatchedBy(func(p *transaction.TransactionPatch) bool {
		return p.IsRepaid != nil && !*p.IsRepaid
	})).Return(nil)

	err := svc.ToggleDebtRepaid(context.Background(), 5)

	assert.NoError(t, err)
}

func TestToggleDebtRepaid_NotADebt(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(5)).Return(&transaction.Transaction{
		ID: 5,
	}, nil)

	err := svc.ToggleDebtRepaid(context.Background(), 5)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestToggleDebtRepaid_NotFound(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, transaction.ErrNotFound)

	err := svc.ToggleDebtRepaid(context.Background(), 5)

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
