// Package recurring projects recurring payment rules against actual
// transactions: which rules already produced a matching transaction this
// month, and how much remains to pay.
package recurring

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// MatchTolerance is the absolute amount tolerance for matching a
// transaction to a rule.
var MatchTolerance = decimal.RequireFromString("0.01")

// FiredMarker tags the description of transactions created by firing a
// rule.
const FiredMarker = " [auto]"

// HasFiredThisMonth reports whether a transaction matching the rule exists
// in the given month: same source account, amount within MatchTolerance on
// either the revenue or the expense side, and the rule's description
// contained case-insensitively in the transaction's.
//
// The match is deliberately loose, a best-effort "already paid" detector:
// it can false-positive on a coincidental amount+substring hit and
// false-negative when the user edited the description.
func HasFiredThisMonth(rule model.RecurringRule, txns []model.Transaction, month time.Month, year int) bool {
	needle := strings.ToLower(rule.Description)
	for _, t := range txns {
		if t.AccountID != rule.AccountID || !t.InMonth(month, year) {
			continue
		}
		if !amountMatches(rule.Amount, t.Expense) && !amountMatches(rule.Amount, t.Revenue) {
			continue
		}
		if strings.Contains(strings.ToLower(t.Description), needle) {
			return true
		}
	}
	return false
}

func amountMatches(want, got decimal.Decimal) bool {
	return got.Sub(want).Abs().LessThanOrEqual(MatchTolerance)
}

// RemainingToPay sums the amounts of the unpaused rules on the given
// account that have not yet fired in the given month.
func RemainingToPay(rules []model.RecurringRule, txns []model.Transaction, accountID string, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rules {
		if r.Paused || r.AccountID != accountID {
			continue
		}
		if !HasFiredThisMonth(r, txns, month, year) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// FireNow materializes a transaction from a rule, dated today, with the
// description tagged and the marker reset. The rule is not mutated, and
// repeated firing intentionally produces repeated transactions.
func FireNow(rule model.RecurringRule, today time.Time) model.Transaction {
	txn := model.Transaction{
		Date:          today,
		Type:          rule.Type,
		AccountID:     rule.AccountID,
		DestAccountID: rule.DestAccountID,
		CategoryID:    rule.CategoryID,
		SubCategory:   rule.SubCategory,
		Description:   rule.Description + FiredMarker,
		PaymentMethod: rule.PaymentMethod,
		Marker:        model.MarkerNone,
	}
	if rule.Type == model.TypeRevenue {
		txn.Revenue = rule.Amount
	} else {
		txn.Expense = rule.Amount
	}
	return txn
}

// Due describes one rule's projection for a month.
type Due struct {
	Rule  model.RecurringRule
	Fired bool
}

// DueList returns the per-rule fired state behind RemainingToPay, for
// display. Paused rules are excluded.
func DueList(rules []model.RecurringRule, txns []model.Transaction, accountID string, month time.Month, year int) []Due {
	var out []Due
	for _, r := range rules {
		if r.Paused || r.AccountID != accountID {
			continue
		}
		out = append(out, Due{Rule: r, Fired: HasFiredThisMonth(r, txns, month, year)})
	}
	return out
}
