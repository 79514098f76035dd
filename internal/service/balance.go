package service

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okovalenko/savings-tracker/internal/currency"
)

// SortOrder is the presentation order of the balance ledger.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BalanceEntry is a derived, per-date snapshot of running balances.
// Balances covers every currency seen up to and including this date,
// so currencies untouched on the date still carry their running value.
type BalanceEntry struct {
	Date         string
	Balances     map[currency.Currency]decimal.Decimal
	Comments     []string
	Transactions []Transaction
}

// MergedComment joins the entry's deduplicated comments for display.
func (e BalanceEntry) MergedComment() string {
	return strings.Join(e.Comments, "; ")
}

// BuildBalanceLedger replays the transactions in chronological order and
// returns one entry per distinct date. The replay keeps a signed running
// accumulator per currency; each entry stores a snapshot of all
// accumulators as of its date. Same-date transactions keep their given
// relative order (the balances themselves commute, only the entry's
// transaction list depends on it). The order parameter only flips the
// returned slice.
func BuildBalanceLedger(txs []Transaction, order SortOrder) []BalanceEntry {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return strings.Compare(a.Date, b.Date)
	})

	running := make(map[currency.Currency]decimal.Decimal)
	entriesByDate := make(map[string]*BalanceEntry)
	var dates []string

	for _, tx := range sorted {
		running[tx.Currency] = running[tx.Currency].Add(tx.SignedAmount())

		entry, ok := entriesByDate[tx.Date]
		if !ok {
			entry = &BalanceEntry{Date: tx.Date}
			entriesByDate[tx.Date] = entry
			dates = append(dates, tx.Date)
		}

		entry.Balances = snapshotBalances(running)
		entry.Transactions = append(entry.Transactions, tx)
		if tx.Comment != "" && !slices.Contains(entry.Comments, tx.Comment) {
			entry.Comments = append(entry.Comments, tx.Comment)
		}
	}

	entries := make([]BalanceEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, *entriesByDate[date])
	}
	if order == SortDesc {
		slices.Reverse(entries)
	}
	return entries
}

// LatestBalances returns the balances of the chronologically last entry.
// The maximum is found by explicit date comparison; the slice may arrive
// in either presentation order.
func LatestBalances(entries []BalanceEntry) map[currency.Currency]decimal.Decimal {
	if len(entries) == 0 {
		return nil
	}

	latest := entries[0]
	for _, entry := range entries[1:] {
		if entry.Date > latest.Date {
			latest = entry
		}
	}
	return latest.Balances
}

func snapshotBalances(running map[currency.Currency]decimal.Decimal) map[currency.Currency]decimal.Decimal {
	snapshot := make(map[currency.Currency]decimal.Decimal, len(running))
	for cur, balance := range running {
		snapshot[cur] = balance
	}
	return snapshot
}
