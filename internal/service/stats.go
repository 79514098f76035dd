package service

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okovalenko/savings-tracker/internal/currency"
)

// MonthlyData is a derived rollup of transactions sharing a calendar month.
type MonthlyData struct {
	Month        string // YYYY-MM
	Total        decimal.Decimal
	Count        int
	Transactions []Transaction
}

// Stats summarizes the whole transaction set.
//
// TotalAmount and AveragePerMonth net signed deltas across all
// currencies into one scalar, which is only dimensionally meaningful
// when one currency dominates. That is the historical behavior of this
// tracker and is kept on purpose; Currencies holds the per-currency
// truth and is what currency-aware callers should read.
type Stats struct {
	TotalAmount     decimal.Decimal
	TotalCount      int
	AveragePerMonth decimal.Decimal
	Currencies      map[currency.Currency]decimal.Decimal
	MonthlyData     []MonthlyData
}

// ComputeStats rolls the transaction set up into per-currency totals,
// monthly aggregates, and summary scalars. Pure function of its input.
func ComputeStats(txs []Transaction) *Stats {
	stats := &Stats{
		TotalCount: len(txs),
		Currencies: make(map[currency.Currency]decimal.Decimal),
	}

	monthsByKey := make(map[string]*MonthlyData)
	var monthKeys []string

	for _, tx := range txs {
		delta := tx.SignedAmount()

		stats.TotalAmount = stats.TotalAmount.Add(delta)
		stats.Currencies[tx.Currency] = stats.Currencies[tx.Currency].Add(delta)

		monthKey := tx.Date
		if len(monthKey) > 7 {
			monthKey = monthKey[:7]
		}
		month, ok := monthsByKey[monthKey]
		if !ok {
			month = &MonthlyData{Month: monthKey}
			monthsByKey[monthKey] = month
			monthKeys = append(monthKeys, monthKey)
		}
		month.Total = month.Total.Add(delta)
		month.Count++
		month.Transactions = append(month.Transactions, tx)
	}

	// Lexicographic month order is chronological for YYYY-MM.
	slices.SortFunc(monthKeys, strings.Compare)
	stats.MonthlyData = make([]MonthlyData, 0, len(monthKeys))
	for _, key := range monthKeys {
		stats.MonthlyData = append(stats.MonthlyData, *monthsByKey[key])
	}

	if len(stats.MonthlyData) > 0 {
		stats.AveragePerMonth = stats.TotalAmount.Div(decimal.NewFromInt(int64(len(stats.MonthlyData))))
	}

	return stats
}
