package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solde-app/solde/internal/logging"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/store"
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

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	app := New(store.NewFileStore(dir, logging.Nop()), logging.Nop())
	require.NoError(t, app.Load(true))
	return app, dir
}

func reopen(t *testing.T, dir string) *App {
	t.Helper()
	app := New(store.NewFileStore(dir, logging.Nop()), logging.Nop())
	require.NoError(t, app.Load(true))
	return app
}

func TestLoad_SeedsFirstRun(t *testing.T) {
	app, _ := newTestApp(t)

	require.Len(t, app.Accounts, 2)
	assert.True(t, app.Accounts[0].Principal)
	require.Len(t, app.Categories, 3)
	assert.Empty(t, app.Transactions)
}

func TestLoad_NoSeed(t *testing.T) {
	app := New(store.NewFileStore(t.TempDir(), logging.Nop()), logging.Nop())
	require.NoError(t, app.Load(false))
	assert.Empty(t, app.Accounts)
	assert.Empty(t, app.Categories)
}

func TestMutationsPersist(t *testing.T) {
	app, dir := newTestApp(t)

	acct, err := app.AddAccount(model.Account{Name: "Joint", InitialBalance: dec("10.00")})
	require.NoError(t, err)
	require.NotEmpty(t, acct.ID)

	_, err = app.PostTransaction(model.Transaction{
		Date:      date(2025, time.June, 1),
		Type:      model.TypeExpense,
		AccountID: acct.ID,
		Expense:   dec("5.00"),
		Marker:    model.MarkerNone,
	}, "")
	require.NoError(t, err)

	// A fresh App over the same dir sees the flushed snapshots, not the
	// seeds.
	again := reopen(t, dir)
	assert.Len(t, again.Accounts, 3)
	require.Len(t, again.Transactions, 1)
	assert.True(t, again.Transactions[0].Expense.Equal(dec("5.00")))
}

func TestPostTransaction_GoalDepositCombined(t *testing.T) {
	app, dir := newTestApp(t)

	goal, err := app.AddGoal(model.SavingsGoal{Name: "Trip", Target: dec("1000.00"), Current: dec("400.00")})
	require.NoError(t, err)

	txn, err := app.PostTransaction(model.Transaction{
		Date:      date(2025, time.June, 1),
		Type:      model.TypeGoalDeposit,
		AccountID: app.Accounts[0].ID,
		Expense:   dec("100.00"),
	}, goal.ID)
	require.NoError(t, err)
	require.NotEmpty(t, txn.ID)

	updated, ok := app.GoalByID(goal.ID)
	require.True(t, ok)
	assert.True(t, updated.Current.Equal(dec("500.00")), "deposit and goal update are one step")
	assert.False(t, updated.Reached)

	// Both snapshots landed.
	again := reopen(t, dir)
	require.Len(t, again.Transactions, 1)
	g, ok := again.GoalByID(goal.ID)
	require.True(t, ok)
	assert.True(t, g.Current.Equal(dec("500.00")))
}

func TestPostTransaction_GoalReachedFlips(t *testing.T) {
	app, _ := newTestApp(t)

	goal, err := app.AddGoal(model.SavingsGoal{Name: "Trip", Target: dec("500.00"), Current: dec("450.00")})
	require.NoError(t, err)

	_, err = app.PostTransaction(model.Transaction{
		Type:      model.TypeGoalDeposit,
		AccountID: app.Accounts[0].ID,
		Expense:   dec("50.00"),
	}, goal.ID)
	require.NoError(t, err)

	updated, _ := app.GoalByID(goal.ID)
	assert.True(t, updated.Reached)
}

func TestPostTransaction_NonDepositIgnoresGoal(t *testing.T) {
	app, _ := newTestApp(t)

	goal, err := app.AddGoal(model.SavingsGoal{Name: "Trip", Target: dec("500.00")})
	require.NoError(t, err)

	_, err = app.PostTransaction(model.Transaction{
		Type:      model.TypeExpense,
		AccountID: app.Accounts[0].ID,
		Expense:   dec("50.00"),
	}, goal.ID)
	require.NoError(t, err)

	updated, _ := app.GoalByID(goal.ID)
	assert.True(t, updated.Current.IsZero())
}

func TestBulkSetMarker(t *testing.T) {
	app, _ := newTestApp(t)
	acctID := app.Accounts[0].ID

	var ids []string
	for i := 0; i < 3; i++ {
		txn, err := app.PostTransaction(model.Transaction{
			Type: model.TypeExpense, AccountID: acctID, Expense: dec("1.00"),
		}, "")
		require.NoError(t, err)
		ids = append(ids, txn.ID)
	}

	require.NoError(t, app.BulkSetMarker(ids[:2], model.MarkerC))

	assert.Equal(t, model.MarkerC, app.Transactions[0].Marker)
	assert.Equal(t, model.MarkerC, app.Transactions[1].Marker)
	assert.NotEqual(t, model.MarkerC, app.Transactions[2].Marker)
}

func TestFireRule(t *testing.T) {
	app, _ := newTestApp(t)
	acctID := app.Accounts[0].ID

	rule, err := app.AddRule(model.RecurringRule{
		AccountID:   acctID,
		Type:        model.TypeExpense,
		Description: "Rent",
		Amount:      dec("700.00"),
	})
	require.NoError(t, err)

	txn, err := app.FireRule(rule.ID, date(2025, time.June, 7))
	require.NoError(t, err)
	assert.Contains(t, txn.Description, "Rent")
	require.Len(t, app.Transactions, 1)

	// Firing again duplicates on purpose.
	_, err = app.FireRule(rule.ID, date(2025, time.June, 8))
	require.NoError(t, err)
	assert.Len(t, app.Transactions, 2)
}

func TestFireRule_Paused(t *testing.T) {
	app, _ := newTestApp(t)

	rule, err := app.AddRule(model.RecurringRule{
		AccountID:   app.Accounts[0].ID,
		Description: "Gym",
		Amount:      dec("30.00"),
		Paused:      true,
	})
	require.NoError(t, err)

	_, err = app.FireRule(rule.ID, date(2025, time.June, 7))
	assert.Error(t, err)
	assert.Empty(t, app.Transactions)
}

func TestFireRule_GoalDepositUpdatesGoal(t *testing.T) {
	app, _ := newTestApp(t)

	goal, err := app.AddGoal(model.SavingsGoal{Name: "Trip", Target: dec("1000.00")})
	require.NoError(t, err)
	rule, err := app.AddRule(model.RecurringRule{
		AccountID:   app.Accounts[0].ID,
		Type:        model.TypeGoalDeposit,
		GoalID:      goal.ID,
		Description: "Trip savings",
		Amount:      dec("50.00"),
	})
	require.NoError(t, err)

	_, err = app.FireRule(rule.ID, date(2025, time.June, 7))
	require.NoError(t, err)

	updated, _ := app.GoalByID(goal.ID)
	assert.True(t, updated.Current.Equal(dec("50.00")))
}

func TestDeleteAccount_OrphansTransactions(t *testing.T) {
	app, _ := newTestApp(t)
	acctID := app.Accounts[0].ID

	_, err := app.PostTransaction(model.Transaction{
		Type: model.TypeExpense, AccountID: acctID, Expense: dec("1.00"),
	}, "")
	require.NoError(t, err)

	require.NoError(t, app.DeleteAccount(acctID))

	// The transaction stays, its account reference now dangling.
	require.Len(t, app.Transactions, 1)
	assert.Equal(t, acctID, app.Transactions[0].AccountID)
	_, ok := app.AccountByID(acctID)
	assert.False(t, ok)
}

func TestBulkInsertTransactions(t *testing.T) {
	app, _ := newTestApp(t)

	count, err := app.BulkInsertTransactions([]model.Transaction{
		{Type: model.TypeExpense, Expense: dec("1.00")},
		{Type: model.TypeRevenue, Revenue: dec("2.00")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, app.Transactions, 2)
	assert.NotEmpty(t, app.Transactions[0].ID)
	assert.NotEqual(t, app.Transactions[0].ID, app.Transactions[1].ID)
}

func TestBulkInsertCategories_SortsSubCategories(t *testing.T) {
	app, _ := newTestApp(t)

	count, err := app.BulkInsertCategories([]model.Category{
		{Name: "Transport", SubCategories: []string{"Train", "bus", "Air"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	added := app.Categories[len(app.Categories)-1]
	assert.Equal(t, []string{"Air", "bus", "Train"}, added.SubCategories)
}

func TestUpdateTransaction_Unknown(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.UpdateTransaction(model.Transaction{ID: "nope"})
	assert.Error(t, err)
}
