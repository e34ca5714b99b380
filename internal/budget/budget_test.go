package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/solde-app/solde/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spend(category, amount string, day time.Time) model.Transaction {
	return model.Transaction{
		Type:       model.TypeExpense,
		CategoryID: category,
		Expense:    dec(amount),
		Date:       day,
	}
}

func TestMonthSpend(t *testing.T) {
	txns := []model.Transaction{
		spend("food", "30.00", date(2025, time.June, 2)),
		spend("food", "45.00", date(2025, time.June, 20)),
		spend("food", "1000.00", date(2025, time.May, 20)), // other month
		spend("rent", "800.00", date(2025, time.June, 1)),  // other category
	}
	got := MonthSpend("food", txns, time.June, 2025)
	assert.True(t, got.Equal(dec("75.00")), "got %s", got)
}

func TestComputeStatus_Clamped(t *testing.T) {
	b := model.Budget{CategoryID: "food", Cap: dec("200.00")}
	txns := []model.Transaction{spend("food", "350.00", date(2025, time.June, 5))}

	st := ComputeStatus(b, txns, time.June, 2025)

	assert.Equal(t, 100, st.SpentPct, "percent is clamped, not 175")
	assert.True(t, st.Remaining.IsZero(), "remaining is floored at zero")
	assert.True(t, st.Overspend.Equal(dec("150.00")))
}

func TestComputeStatus_PartialSpend(t *testing.T) {
	b := model.Budget{CategoryID: "food", Cap: dec("200.00")}
	txns := []model.Transaction{spend("food", "50.00", date(2025, time.June, 5))}

	st := ComputeStatus(b, txns, time.June, 2025)

	assert.Equal(t, 25, st.SpentPct)
	assert.True(t, st.Remaining.Equal(dec("150.00")))
	assert.True(t, st.Overspend.IsZero())
}

func TestComputeStatus_RoundsPercent(t *testing.T) {
	b := model.Budget{CategoryID: "food", Cap: dec("300.00")}
	txns := []model.Transaction{spend("food", "100.00", date(2025, time.June, 5))}

	// 33.33…% rounds to 33.
	assert.Equal(t, 33, ComputeStatus(b, txns, time.June, 2025).SpentPct)
}

func TestComputeStatus_ZeroCap(t *testing.T) {
	b := model.Budget{CategoryID: "food", Cap: decimal.Zero}
	txns := []model.Transaction{spend("food", "10.00", date(2025, time.June, 5))}

	st := ComputeStatus(b, txns, time.June, 2025)
	assert.Equal(t, 100, st.SpentPct)
	assert.True(t, st.Remaining.IsZero())
}

func TestTriggeredAlerts(t *testing.T) {
	b := model.Budget{Cap: dec("200.00"), Alerts: []float64{0.5, 0.8, 1.0}}

	assert.Equal(t, []float64{0.5}, TriggeredAlerts(b, dec("110.00")))
	assert.Equal(t, []float64{0.5, 0.8, 1.0}, TriggeredAlerts(b, dec("350.00")))
	assert.Nil(t, TriggeredAlerts(b, dec("10.00")))
}

func TestRequiredMonthlySaving_Reached(t *testing.T) {
	deadline := date(2026, time.June, 1)
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("1000.00"), Deadline: &deadline}

	assert.True(t, RequiredMonthlySaving(g, date(2025, time.June, 15)).IsZero(),
		"reached goals require 0 regardless of deadline")
}

func TestRequiredMonthlySaving_NoDeadline(t *testing.T) {
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("400.00")}
	assert.True(t, RequiredMonthlySaving(g, date(2025, time.June, 15)).IsZero())
}

func TestRequiredMonthlySaving_DeadlineThisMonth(t *testing.T) {
	deadline := date(2025, time.June, 28)
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("400.00"), Deadline: &deadline}

	got := RequiredMonthlySaving(g, date(2025, time.June, 1))
	assert.True(t, got.Equal(dec("600.00")), "deadline this month requires the full remaining, got %s", got)
}

func TestRequiredMonthlySaving_PastDeadline(t *testing.T) {
	deadline := date(2025, time.January, 1)
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("400.00"), Deadline: &deadline}

	assert.True(t, RequiredMonthlySaving(g, date(2025, time.June, 1)).Equal(dec("600.00")))
}

func TestRequiredMonthlySaving_Amortized(t *testing.T) {
	deadline := date(2025, time.November, 1) // 5 whole months from June
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("400.00"), Deadline: &deadline}

	got := RequiredMonthlySaving(g, date(2025, time.June, 20))
	assert.True(t, got.Equal(dec("120.00")), "600/5, got %s", got)
}

func TestRequiredMonthlySaving_AcrossYears(t *testing.T) {
	deadline := date(2026, time.February, 1) // 8 months from June 2025
	g := model.SavingsGoal{Target: dec("1000.00"), Current: dec("200.00"), Deadline: &deadline}

	got := RequiredMonthlySaving(g, date(2025, time.June, 1))
	assert.True(t, got.Equal(dec("100.00")), "800/8, got %s", got)
}
