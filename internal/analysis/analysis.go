// Package analysis derives the cross-entity figures shown on the overview:
// per-card outstanding spend and the principal account's disposable
// remaining ("reste à vivre").
package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/ledger"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/recurring"
)

// CardMonthlyTotal sums the expense side of the month's transactions whose
// payment method attributes them to the named card.
func CardMonthlyTotal(cardName string, txns []model.Transaction, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if model.CardName(t.PaymentMethod) == cardName && t.InMonth(month, year) {
			total = total.Add(t.Expense)
		}
	}
	return total
}

// Principal returns the first account marked principal, plus how many carry
// the flag so callers can warn when the convention is violated (zero or
// several marked accounts). Nothing is auto-corrected: first-marked wins.
func Principal(accounts []model.Account) (model.Account, int) {
	var first model.Account
	count := 0
	for _, a := range accounts {
		if a.Principal {
			if count == 0 {
				first = a
			}
			count++
		}
	}
	return first, count
}

// DisposableRemaining is the principal account's balance minus the
// remaining-to-pay total of its unpaused recurring rules for the month.
// It is recomputed from scratch on every call; with no principal account
// it is zero and ok is false.
func DisposableRemaining(accounts []model.Account, rules []model.RecurringRule, txns []model.Transaction, month time.Month, year int) (decimal.Decimal, bool) {
	principal, count := Principal(accounts)
	if count == 0 {
		return decimal.Zero, false
	}
	balance := ledger.AccountBalance(principal, txns)
	remaining := recurring.RemainingToPay(rules, txns, principal.ID, month, year)
	return balance.Sub(remaining), true
}
