package service

import (
	"github.com/shopspring/decimal"
)

// DebtFilter selects debts by repayment status.
type DebtFilter string

const (
	DebtActive DebtFilter = "active"
	DebtRepaid DebtFilter = "repaid"
	DebtAll    DebtFilter = "all"
)

// Label for debts recorded without a counterparty name.
const unnamedDebtor = "unnamed"

// DebtGroup is a derived rollup of debt transactions sharing a
// counterparty. TotalOwedToUser and TotalUserOwes are independent
// non-negative totals; the net position is left to the caller.
type DebtGroup struct {
	Person          string
	TotalOwedToUser decimal.Decimal
	TotalUserOwes   decimal.Decimal
	Debts           []Transaction
}

// GroupDebts filters debt transactions by repayment status and groups
// them by counterparty. The name is grouped verbatim, no case or
// whitespace normalization, exactly as it was entered. A withdrawal
// debt means money lent out (owed to the user); a deposit debt means
// money borrowed (the user owes). Groups keep the first-appearance
// order of the input.
func GroupDebts(txs []Transaction, filter DebtFilter) []DebtGroup {
	groupsByPerson := make(map[string]*DebtGroup)
	var persons []string

	for _, tx := range txs {
		if !tx.IsDebt {
			continue
		}
		if filter == DebtActive && tx.IsRepaid {
			continue
		}
		if filter == DebtRepaid && !tx.IsRepaid {
			continue
		}

		person := tx.DebtTo
		if person == "" {
			person = unnamedDebtor
		}

		group, ok := groupsByPerson[person]
		if !ok {
			group = &DebtGroup{Person: person}
			groupsByPerson[person] = group
			persons = append(persons, person)
		}

		group.Debts = append(group.Debts, tx)
		if tx.Type == TypeWithdrawal {
			group.TotalOwedToUser = group.TotalOwedToUser.Add(tx.Amount)
		} else {
			group.TotalUserOwes = group.TotalUserOwes.Add(tx.Amount)
		}
	}

	groups := make([]DebtGroup, 0, len(persons))
	for _, person := range persons {
		groups = append(groups, *groupsByPerson[person])
	}
	return groups
}
