package transaction

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var _ ITransactionsTable = (*TransactionsTable)(nil)

const selectColumns = `id, amount, date, currency, type, comment, created_at, is_debt, debt_to, is_repaid`

type TransactionsTable struct {
	db *sql.DB
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// Insert creates a new transaction and returns its store-assigned id.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := t.db.ExecContext(ctx,
		`INSERT INTO transactions (amount, date, currency, type, comment, created_at, is_debt, debt_to, is_repaid)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		create.Amount.String(),
		create.Date,
		create.Currency,
		create.Type,
		create.Comment,
		createdAt.Format(time.RFC3339Nano),
		create.IsDebt,
		create.DebtTo,
		create.IsRepaid,
	)
	if err != nil {
		return 0, &StorageError{Op: "transactions.insert", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "transactions.insert", Err: err}
	}
	return id, nil
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM transactions WHERE id = ?`, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "transactions.findByID", Err: err}
	}
	return tx, nil
}

// All returns every transaction ordered by date descending. Ties on date
// break by id descending so the order is deterministic.
func (t *TransactionsTable) All(ctx context.Context) ([]*Transaction, error) {
	return t.query(ctx, "transactions.all",
		`SELECT `+selectColumns+` FROM transactions ORDER BY date DESC, id DESC`)
}

// ByDateRange returns transactions with start <= date <= end. The bounds
// compare lexicographically, which is chronological for the fixed-width
// YYYY-MM-DD format.
func (t *TransactionsTable) ByDateRange(ctx context.Context, start, end string) ([]*Transaction, error) {
	return t.query(ctx, "transactions.byDateRange",
		`SELECT `+selectColumns+` FROM transactions WHERE date >= ? AND date <= ? ORDER BY date DESC, id DESC`,
		start, end)
}

// ByCurrency returns transactions recorded in the given currency.
func (t *TransactionsTable) ByCurrency(ctx context.Context, currency string) ([]*Transaction, error) {
	return t.query(ctx, "transactions.byCurrency",
		`SELECT `+selectColumns+` FROM transactions WHERE currency = ? ORDER BY date DESC, id DESC`,
		currency)
}

// Update applies a merge-patch to the record with the given id. Returns
// ErrNotFound when the id does not exist. An empty patch only verifies
// existence.
func (t *TransactionsTable) Update(ctx context.Context, id int64, patch *TransactionPatch) error {
	setClauses := make([]string, 0, 8)
	args := make([]interface{}, 0, 9)

	if patch.Amount != nil {
		setClauses = append(setClauses, "amount = ?")
		args = append(args, patch.Amount.String())
	}
	if patch.Date != nil {
		setClauses = append(setClauses, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Currency != nil {
		setClauses = append(setClauses, "currency = ?")
		args = append(args, *patch.Currency)
	}
	if patch.Type != nil {
		setClauses = append(setClauses, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.Comment != nil {
		setClauses = append(setClauses, "comment = ?")
		args = append(args, *patch.Comment)
	}
	if patch.IsDebt != nil {
		setClauses = append(setClauses, "is_debt = ?")
		args = append(args, *patch.IsDebt)
	}
	if patch.DebtTo != nil {
		setClauses = append(setClauses, "debt_to = ?")
		args = append(args, *patch.DebtTo)
	}
	if patch.IsRepaid != nil {
		setClauses = append(setClauses, "is_repaid = ?")
		args = append(args, *patch.IsRepaid)
	}

	if len(setClauses) == 0 {
		_, err := t.FindByID(ctx, id)
		return err
	}

	args = append(args, id)
	res, err := t.db.ExecContext(ctx,
		`UPDATE transactions SET `+strings.Join(setClauses, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return &StorageError{Op: "transactions.update", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "transactions.update", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record with the given id, returning ErrNotFound
// when it is already absent.
func (t *TransactionsTable) Delete(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return &StorageError{Op: "transactions.delete", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "transactions.delete", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *TransactionsTable) query(ctx context.Context, op, query string, args ...interface{}) ([]*Transaction, error) {
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, &StorageError{Op: op, Err: err}
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: op, Err: err}
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var (
		tx        Transaction
		amount    string
		createdAt string
	)

	err := row.Scan(
		&tx.ID,
		&amount,
		&tx.Date,
		&tx.Currency,
		&tx.Type,
		&tx.Comment,
		&createdAt,
		&tx.IsDebt,
		&tx.DebtTo,
		&tx.IsRepaid,
	)
	if err != nil {
		return nil, err
	}

	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}

	tx.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}
