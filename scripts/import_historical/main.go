// One-shot import of the historical balance notebook. Consecutive
// balance points are diffed into deposit/withdrawal transactions and
// replayed through the regular creation API. Not idempotent: running it
// twice duplicates the history.
package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	savings "github.com/okovalenko/savings-tracker"
	"github.com/okovalenko/savings-tracker/internal/config"
	"github.com/okovalenko/savings-tracker/internal/currency"
	"github.com/okovalenko/savings-tracker/internal/service"
)

// balancePoint is one row of the original notebook: the total balance on
// a date. Early rows tracked USD only; later rows track USD and EUR.
type balancePoint struct {
	usd     int64
	eur     int64
	date    string
	comment string
}

var balanceHistory = []balancePoint{
	{usd: 6500, date: "2022-10-04"},
	{usd: 9300, date: "2022-10-05"},
	{usd: 12300, date: "2022-10-10"},
	{usd: 15400, date: "2022-12-25"},
	{usd: 14050, date: "2023-01-07"},
	{usd: 15300, date: "2023-01-13"},
	{usd: 18300, date: "2023-01-16"},
	{usd: 18700, date: "2023-02-03"},
	{usd: 21300, date: "2023-02-11"},
	{usd: 22200, date: "2023-02-18"},
	{usd: 22150, date: "2023-02-24"},
	{usd: 22650, date: "2023-02-26"},
	{usd: 23200, date: "2023-03-01"},
	{usd: 25000, date: "2023-03-12"},
	{usd: 25700, date: "2023-03-15"},
	{usd: 26300, date: "2023-04-05"},
	{usd: 26200, date: "2023-04-09"},
	{usd: 28800, date: "2023-04-10"},
	{usd: 29800, date: "2023-04-12"},
	{usd: 29300, date: "2023-04-20"},
	{usd: 30100, date: "2023-04-23"},
	{usd: 29000, date: "2023-05-02"},
	{usd: 30600, date: "2023-05-07"},
	{usd: 32500, date: "2023-05-14"},
	{usd: 32350, date: "2023-05-19"},
	{usd: 33750, date: "2023-05-24"},
	{usd: 35350, date: "2023-06-02"},
	{usd: 37850, date: "2023-06-11"},
	{usd: 39650, date: "2023-06-18"},
	{usd: 49650, date: "2023-06-25"},
	{usd: 15650, date: "2023-06-28"},
	{usd: 15000, date: "2023-06-30"},
	{usd: 16000, date: "2023-07-05"},
	{usd: 15700, date: "2023-07-08"},
	{usd: 18200, date: "2023-07-08"},
	{usd: 11700, date: "2023-07-09"},
	{usd: 10700, date: "2023-07-13"},
	{usd: 9000, date: "2023-07-17"},
	{usd: 9400, date: "2023-07-19"},
	{usd: 10400, date: "2023-07-22"},
	{usd: 10000, date: "2023-07-25"},
	{usd: 11300, date: "2023-07-27"},
	{usd: 11000, date: "2023-07-30"},
	{usd: 10700, date: "2023-08-02"},
	{usd: 13700, date: "2023-08-09"},
	{usd: 13400, date: "2023-08-12"},
	{usd: 13000, date: "2023-08-21"},
	{usd: 14000, date: "2023-08-29"},
	{usd: 13000, date: "2023-09-04"},
	{usd: 17000, date: "2023-09-10"},
	{usd: 15800, date: "2023-09-18"},
	{usd: 16330, date: "2023-09-23"},
	{usd: 17730, date: "2023-09-28"},
	{usd: 20730, date: "2023-10-08"},
	{usd: 21930, date: "2023-10-08"},
	{usd: 21830, date: "2023-10-15"},
	{usd: 20730, date: "2023-11-03"},
	{usd: 20530, date: "2023-11-04"},
	{usd: 24530, date: "2023-11-09"},
	{usd: 23300, date: "2023-11-24"},
	{usd: 24500, date: "2023-11-26"},
	{usd: 24300, date: "2023-12-03"},
	{usd: 25100, date: "2023-12-05"},
	{usd: 27000, date: "2023-12-09"},
	{usd: 27200, date: "2023-12-11"},
	{usd: 26600, date: "2023-12-17", comment: "Мамі 400$ позичив, 200 поміняв"},
	{usd: 26300, date: "2023-12-22"},
	{usd: 25800, date: "2024-01-08"},
	{usd: 26450, date: "2024-01-08"},
	{usd: 26950, date: "2024-01-09"},
	{usd: 27050, date: "2024-01-11"},
	{usd: 28150, date: "2024-01-23"},
	{usd: 27800, date: "2024-02-08"},
	{usd: 28250, date: "2024-02-10"},
	{usd: 28750, date: "2024-02-11"},
	{usd: 30750, date: "2024-02-11"},
	{usd: 29400, date: "2024-02-15"},
	{usd: 29200, date: "2024-02-17"},
	{usd: 29600, date: "2024-02-24"},
	{usd: 29200, date: "2024-03-06"},
	{usd: 29400, date: "2024-03-10"},
	{usd: 30500, date: "2024-03-13"},
	{usd: 31400, date: "2024-03-18"},
	{usd: 30800, date: "2024-04-07"},
	{usd: 32800, date: "2024-04-08"},
	{usd: 32300, date: "2024-04-29"},
	{usd: 32100, date: "2024-05-07", comment: "купили айпад татові"},
	{usd: 32600, date: "2025-05-08"},
	{usd: 35600, date: "2025-05-09"},
	{usd: 35400, date: "2025-05-18", comment: "взяв 200 на ремонт корси"},
	{usd: 35750, eur: 1600, date: "2025-06-09", comment: "Взяв 200 на квартиру"},
	{usd: 36750, eur: 1600, date: "2025-06-09"},
	{usd: 37000, eur: 1600, date: "2025-06-10"},
	{usd: 36550, eur: 1600, date: "2025-06-16"},
	{usd: 36400, eur: 1600, date: "2025-07-02"},
	{usd: 30400, eur: 1600, date: "2025-07-03", comment: "позичив Вові 6к до кінця серпня"},
	{usd: 30000, eur: 1600, date: "2025-07-04", comment: "взяв 500 Максиму на весілля"},
	{usd: 31200, eur: 1100, date: "2025-07-09", comment: "купив 1.2, взяв 500євро на фари"},
	{usd: 33200, eur: 1100, date: "2025-07-12"},
	{usd: 34450, eur: 1100, date: "2025-07-17"},
	{usd: 34150, eur: 600, date: "2025-07-28"},
	{usd: 37550, eur: 0, date: "2025-08-12"},
	{usd: 37850, eur: 0, date: "2025-08-13"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	tracker, err := savings.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("savings.Open")
		return
	}
	defer tracker.Close()

	ctx := context.Background()
	inputs := buildTransactions()

	imported := 0
	for _, input := range inputs {
		if _, err := tracker.CreateTransaction(ctx, input); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"date":     input.Date,
				"currency": input.Currency,
			}).Fatal("CreateTransaction")
			return
		}
		imported++
	}

	logrus.WithField("imported", imported).Info("Historical import complete")
}

// buildTransactions turns the balance notebook into transactions: the
// first point becomes the opening deposit, every later point contributes
// one transaction per currency whose balance changed.
func buildTransactions() []savings.TransactionInput {
	first := balanceHistory[0]
	inputs := []savings.TransactionInput{{
		Amount:   decimal.NewFromInt(first.usd),
		Date:     first.date,
		Currency: currency.USD,
		Type:     service.TypeDeposit,
		Comment:  "Початковий баланс",
	}}

	for i := 1; i < len(balanceHistory); i++ {
		prev := balanceHistory[i-1]
		curr := balanceHistory[i]

		if input, ok := changeTransaction(curr.usd-prev.usd, curr.date, currency.USD, curr.comment); ok {
			inputs = append(inputs, input)
		}
		if input, ok := changeTransaction(curr.eur-prev.eur, curr.date, currency.EUR, curr.comment); ok {
			inputs = append(inputs, input)
		}
	}

	return inputs
}

func changeTransaction(change int64, date string, cur currency.Currency, comment string) (savings.TransactionInput, bool) {
	if change == 0 {
		return savings.TransactionInput{}, false
	}

	if comment == "" {
		comment = fmt.Sprintf("Зміна балансу %s: %+d", cur, change)
	}

	txType := service.TypeDeposit
	if change < 0 {
		txType = service.TypeWithdrawal
		change = -change
	}

	return savings.TransactionInput{
		Amount:   decimal.NewFromInt(change),
		Date:     date,
		Currency: cur,
		Type:     txType,
		Comment:  comment,
	}, true
}
