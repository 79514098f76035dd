package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okovalenko/savings-tracker/internal/currency"
)

func makeTx(amount, date string, cur currency.Currency, txType TransactionType) Transaction {
	return Transaction{
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
		Currency: cur,
		Type:     txType,
	}
}

func TestBuildBalanceLedger_Empty(t *testing.T) {
	assert.Empty(t, BuildBalanceLedger(nil, SortAsc))
}

func TestBuildBalanceLedger_SameDateNets(t *testing.T) {
	txs := []Transaction{
		makeTx("100", "2024-01-05", currency.USD, TypeDeposit),
		makeTx("30", "2024-01-05", currency.USD, TypeWithdrawal),
	}

	entries := BuildBalanceLedger(txs, SortAsc)

	require.Len(t, entries, 1)
	assert.Equal(t, "2024-01-05", entries[0].Date)
	assert.True(t, entries[0].Balances[currency.USD].Equal(decimal.RequireFromString("70")))
	assert.Len(t, entries[0].Transactions, 2)
}

func TestBuildBalanceLedger_RunningBalanceAcrossDates(t *testing.T) {
	txs := []Transaction{
		makeTx("100", "2024-01-01", currency.USD, TypeDeposit),
		makeTx("40", "2024-01-03", currency.USD, TypeWithdrawal),
		makeTx("10", "2024-01-05", currency.USD, TypeDeposit),
	}

	entries := BuildBalanceLedger(txs, SortAsc)

	require.Len(t, entries, 3)
	assert.True(t, entries[0].Balances[currency.USD].Equal(decimal.RequireFromString("100")))
	assert.True(t, entries[1].Balances[currency.USD].Equal(decimal.RequireFromString("60")))
	assert.True(t, entries[2].Balances[currency.USD].Equal(decimal.RequireFromString("70")))
}

func TestBuildBalanceLedger_SnapshotCarriesUntouchedCurrencies(t *testing.T) {
	txs := []Transaction{
		makeTx("50", "2024-02-01", currency.EUR, TypeDeposit),
		makeTx("20", "2024-02-02", currency.USD, TypeDeposit),
	}

	entries := BuildBalanceLedger(txs, SortAsc)

	require.Len(t, entries, 2)

	// Day two touched only USD, yet the EUR running balance is present.
	lastDay := entries[1]
	assert.True(t, lastDay.Balances[currency.USD].Equal(decimal.RequireFromString("20")))
	assert.True(t, lastDay.Balances[currency.EUR].Equal(decimal.RequireFromString("50")))
}

func TestBuildBalanceLedger_PermutationDeterminism(t *testing.T) {
	txs := []Transaction{
		makeTx("100", "2024-01-05", currency.USD, TypeDeposit),
		makeTx("30", "2024-01-05", currency.USD, TypeWithdrawal),
		makeTx("50", "2024-01-02", currency.EUR, TypeDeposit),
		makeTx("25", "2024-01-09", currency.USD, TypeWithdrawal),
	}
	shuffled := []Transaction{txs[3], txs[1], txs[0], txs[2]}

	original := BuildBalanceLedger(txs, SortAsc)
	permuted := BuildBalanceLedger(shuffled, SortAsc)

	require.Equal(t, len(original), len(permuted))
	for i := range original {
		assert.Equal(t, original[i].Date, permuted[i].Date)
		for _, cur := range currency.All() {
			assert.True(t, original[i].Balances[cur].Equal(permuted[i].Balances[cur]),
				"balance mismatch for %s on %s", cur, original[i].Date)
		}
	}
}

func TestBuildBalanceLedger_FinalBalanceIsSumOfDeltas(t *testing.T) {
	txs := []Transaction{
		makeTx("10", "2024-03-03", currency.USD, TypeDeposit),
		makeTx("7", "2024-01-01", currency.USD, TypeWithdrawal),
		makeTx("42", "2024-02-02", currency.USD, TypeDeposit),
	}

	expected := decimal.Zero
	for _, tx := range txs {
		expected = expected.Add(tx.SignedAmount())
	}

	entries := BuildBalanceLedger(txs, SortAsc)
	require.NotEmpty(t, entries)
	final := entries[len(entries)-1].Balances[currency.USD]
	assert.True(t, final.Equal(expected))
}

func TestBuildBalanceLedger_SortOrderIsPresentationOnly(t *testing.T) {
	txs := []Transaction{
		makeTx("1", "2024-01-01", currency.USD, TypeDeposit),
		makeTx("1", "2024-01-02", currency.USD, TypeDeposit),
		makeTx("1", "2024-01-03", currency.USD, TypeDeposit),
	}

	asc := BuildBalanceLedger(txs, SortAsc)
	desc := BuildBalanceLedger(txs, SortDesc)

	require.Len(t, asc, 3)
	require.Len(t, desc, 3)
	assert.Equal(t, "2024-01-01", asc[0].Date)
	assert.Equal(t, "2024-01-03", desc[0].Date)

	for i := range asc {
		mirrored := desc[len(desc)-1-i]
		assert.Equal(t, asc[i].Date, mirrored.Date)
		assert.True(t, asc[i].Balances[currency.USD].Equal(mirrored.Balances[currency.USD]))
	}
}

func TestBuildBalanceLedger_CommentsDeduplicated(t *testing.T) {
	first := makeTx("10", "2024-01-05", currency.USD, TypeDeposit)
	first.Comment = "salary"
	second := makeTx("5", "2024-01-05", currency.USD, TypeDeposit)
	second.Comment = "salary"
	third := makeTx("3", "2024-01-05", currency.USD, TypeWithdrawal)
	third.Comment = "groceries"
	fourth := makeTx("2", "2024-01-05", currency.USD, TypeWithdrawal)

	entries := BuildBalanceLedger([]Transaction{first, second, third, fourth}, SortAsc)

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"salary", "groceries"}, entries[0].Comments)
	assert.Equal(t, "salary; groceries", entries[0].MergedComment())
}

func TestLatestBalances_ByDateNotByPosition(t *testing.T) {
	txs := []Transaction{
		makeTx("100", "2024-01-01", currency.USD, TypeDeposit),
		makeTx("30", "2024-03-01", currency.USD, TypeWithdrawal),
	}

	// Descending presentation order puts the oldest entry last; the
	// latest balance must still come from the chronological maximum.
	entries := BuildBalanceLedger(txs, SortDesc)
	balances := LatestBalances(entries)

	require.NotNil(t, balances)
	assert.True(t, balances[currency.USD].Equal(decimal.RequireFromString("70")))
}

func TestLatestBalances_Empty(t *testing.T) {
	assert.Nil(t, LatestBalances(nil))
}
