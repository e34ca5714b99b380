package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// SortKey selects the column a running-balance sequence is ordered by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByDescription SortKey = "description"
	SortByCategory    SortKey = "category"
	SortBySubCategory SortKey = "subcategory"
	SortByRevenue     SortKey = "revenue"
	SortByExpense     SortKey = "expense"
	SortByPayment     SortKey = "payment"
	SortByMarker      SortKey = "marker"
)

// SortDirection orders a running-balance sequence ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// RunningBalance pairs a transaction with the account balance after its
// effect is applied, under one particular sort order.
type RunningBalance struct {
	Txn     model.Transaction
	Balance decimal.Decimal
}

// AccountBalance returns the account's current balance: initial balance
// plus the effect of every transaction touching the account. The fold is a
// pure sum, so the result does not depend on iteration order.
func AccountBalance(acct model.Account, txns []model.Transaction) decimal.Decimal {
	balance := acct.InitialBalance
	for _, t := range txns {
		balance = balance.Add(t.EffectOn(acct.ID))
	}
	return balance
}

// RunningBalances sorts the account's transactions by the given key and
// direction, then folds left to right from the initial balance, attaching
// to each transaction the total after its effect.
//
// The sequence is a display aid: re-sorting by a different key re-derives
// different intermediate totals. Only the final total is canonical and
// always equals AccountBalance.
func RunningBalances(acct model.Account, txns []model.Transaction, key SortKey, dir SortDirection) []RunningBalance {
	mine := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.AccountID == acct.ID || t.DestAccountID == acct.ID {
			mine = append(mine, t)
		}
	}

	SortTransactions(mine, key, dir)

	out := make([]RunningBalance, len(mine))
	balance := acct.InitialBalance
	for i, t := range mine {
		balance = balance.Add(t.EffectOn(acct.ID))
		out[i] = RunningBalance{Txn: t, Balance: balance}
	}
	return out
}

// SortTransactions orders txns in place by key and direction. String keys
// compare case-insensitively, markers by their fixed precedence, dates and
// amounts naturally. The sort is stable so equal keys keep their relative
// order and repeated sorts are deterministic.
func SortTransactions(txns []model.Transaction, key SortKey, dir SortDirection) {
	less := lessFunc(key)
	sort.SliceStable(txns, func(i, j int) bool {
		if dir == Descending {
			return less(txns[j], txns[i])
		}
		return less(txns[i], txns[j])
	})
}

func lessFunc(key SortKey) func(a, b model.Transaction) bool {
	switch key {
	case SortByDescription:
		return stringLess(func(t model.Transaction) string { return t.Description })
	case SortByCategory:
		return stringLess(func(t model.Transaction) string { return t.CategoryID })
	case SortBySubCategory:
		return stringLess(func(t model.Transaction) string { return t.SubCategory })
	case SortByPayment:
		return stringLess(func(t model.Transaction) string { return t.PaymentMethod })
	case SortByRevenue:
		return func(a, b model.Transaction) bool { return a.Revenue.LessThan(b.Revenue) }
	case SortByExpense:
		return func(a, b model.Transaction) bool { return a.Expense.LessThan(b.Expense) }
	case SortByMarker:
		return func(a, b model.Transaction) bool { return a.Marker.Rank() < b.Marker.Rank() }
	default:
		return func(a, b model.Transaction) bool { return a.Date.Before(b.Date) }
	}
}

func stringLess(field func(model.Transaction) string) func(a, b model.Transaction) bool {
	return func(a, b model.Transaction) bool {
		return strings.ToLower(field(a)) < strings.ToLower(field(b))
	}
}
