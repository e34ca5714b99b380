// Package budget derives budget consumption and savings-goal effort from
// the current transaction set. No consumption state is persisted; every
// figure is recomputed from scratch on read.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

var hundred = decimal.NewFromInt(100)

// MonthSpend sums the expense side of the category's transactions dated
// within the given month.
func MonthSpend(categoryID string, txns []model.Transaction, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.CategoryID == categoryID && t.InMonth(month, year) {
			total = total.Add(t.Expense)
		}
	}
	return total
}

// Status is a budget's live consumption for one month.
type Status struct {
	Spent decimal.Decimal
	// SpentPct is rounded and clamped to 100 for display.
	SpentPct int
	// Remaining is floored at zero; overspend never drives it negative.
	Remaining decimal.Decimal
	// Overspend carries the raw over-amount for callers that report it.
	Overspend decimal.Decimal
}

// ComputeStatus derives a budget's consumption against the given month's
// transactions.
func ComputeStatus(b model.Budget, txns []model.Transaction, month time.Month, year int) Status {
	spent := MonthSpend(b.CategoryID, txns, month, year)

	st := Status{Spent: spent, Remaining: decimal.Zero, Overspend: decimal.Zero}
	if b.Cap.IsPositive() {
		pct := spent.Div(b.Cap).Mul(hundred).Round(0)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		st.SpentPct = int(pct.IntPart())
	} else if spent.IsPositive() {
		st.SpentPct = 100
	}

	if diff := b.Cap.Sub(spent); diff.IsPositive() {
		st.Remaining = diff
	} else {
		st.Overspend = diff.Neg()
	}
	return st
}

// TriggeredAlerts returns the budget's alert thresholds that the given
// spend has crossed, in the order they are configured.
func TriggeredAlerts(b model.Budget, spent decimal.Decimal) []float64 {
	var fired []float64
	for _, frac := range b.Alerts {
		threshold := b.Cap.Mul(decimal.NewFromFloat(frac))
		if spent.GreaterThanOrEqual(threshold) {
			fired = append(fired, frac)
		}
	}
	return fired
}
