package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// RequiredMonthlySaving returns the straight-line monthly effort needed to
// reach the goal by its deadline: remaining divided by whole months left,
// with no compounding and no partial-month fraction.
//
// A reached goal or a goal without a deadline requires 0. A deadline in the
// current month (or past) requires the full remaining amount at once.
func RequiredMonthlySaving(g model.SavingsGoal, today time.Time) decimal.Decimal {
	remaining := g.Target.Sub(g.Current)
	if !remaining.IsPositive() || g.Deadline == nil {
		return decimal.Zero
	}

	d := *g.Deadline
	months := (d.Year()-today.Year())*12 + int(d.Month()) - int(today.Month())
	if months <= 0 {
		return remaining
	}
	return remaining.DivRound(decimal.NewFromInt(int64(months)), 2)
}
