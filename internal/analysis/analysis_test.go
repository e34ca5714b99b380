package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestCardMonthlyTotal(t *testing.T) {
	txns := []model.Transaction{
		{PaymentMethod: "Card: Visa", Expense: dec("30.00"), Date: date(2025, time.June, 3)},
		{PaymentMethod: "Card: Visa", Expense: dec("45.00"), Date: date(2025, time.June, 20)},
		{PaymentMethod: "Card: Visa", Expense: dec("1000.00"), Date: date(2025, time.May, 12)},
		{PaymentMethod: "Card: Amex", Expense: dec("77.00"), Date: date(2025, time.June, 5)},
		{PaymentMethod: "cash", Expense: dec("5.00"), Date: date(2025, time.June, 5)},
	}

	got := CardMonthlyTotal("Visa", txns, time.June, 2025)
	assert.True(t, got.Equal(dec("75.00")), "last month's 1000 must not count, got %s", got)
}

func TestPrincipal_FirstMarkedWins(t *testing.T) {
	accounts := []model.Account{
		{ID: "a1", Name: "Savings"},
		{ID: "a2", Name: "Checking", Principal: true},
		{ID: "a3", Name: "Joint", Principal: true},
	}

	principal, count := Principal(accounts)
	assert.Equal(t, "a2", principal.ID)
	assert.Equal(t, 2, count)
}

func TestPrincipal_NoneMarked(t *testing.T) {
	_, count := Principal([]model.Account{{ID: "a1"}})
	assert.Equal(t, 0, count)
}

func TestDisposableRemaining(t *testing.T) {
	accounts := []model.Account{
		{ID: "main", Name: "Checking", InitialBalance: dec("1500.00"), Principal: true},
	}
	rules := []model.RecurringRule{
		{ID: "r1", AccountID: "main", Description: "Rent", Amount: dec("200.00")},
	}

	got, ok := DisposableRemaining(accounts, rules, nil, time.June, 2025)
	require.True(t, ok)
	assert.True(t, got.Equal(dec("1300.00")), "1500 - 200 unmatched, got %s", got)
}

func TestDisposableRemaining_RulePaid(t *testing.T) {
	accounts := []model.Account{
		{ID: "main", InitialBalance: dec("1500.00"), Principal: true},
	}
	rules := []model.RecurringRule{
		{ID: "r1", AccountID: "main", Description: "Rent", Amount: dec("200.00")},
	}
	txns := []model.Transaction{
		{AccountID: "main", Date: date(2025, time.June, 2), Description: "Rent june", Expense: dec("200.00")},
	}

	got, ok := DisposableRemaining(accounts, rules, txns, time.June, 2025)
	require.True(t, ok)
	// The payment both lowers the balance and clears the rule.
	assert.True(t, got.Equal(dec("1300.00")), "got %s", got)
}

func TestDisposableRemaining_NoPrincipal(t *testing.T) {
	_, ok := DisposableRemaining([]model.Account{{ID: "a1"}}, nil, nil, time.June, 2025)
	assert.False(t, ok)
}
