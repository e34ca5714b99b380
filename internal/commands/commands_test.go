package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solde-app/solde/internal/config"
	"github.com/solde-app/solde/internal/logging"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/state"
	"github.com/solde-app/solde/internal/store"
)

// newTestProject writes a solde.yaml into a temp dir and returns the
// config path together with the data dir it points at.
func newTestProject(t *testing.T, cfg config.Config) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg.DataDir = filepath.Join(dir, "data")
	cfgPath := filepath.Join(dir, config.FileName)
	require.NoError(t, config.Save(cfgPath, &cfg))
	return cfgPath, cfg.DataDir
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func openTestApp(t *testing.T, dataDir string) *state.App {
	t.Helper()
	app := state.New(store.NewFileStore(dataDir, logging.Nop()), logging.Nop())
	require.NoError(t, app.Load(false))
	return app
}

func TestImportTransactions_ConfigInvertSign(t *testing.T) {
	cfgPath, dataDir := newTestProject(t, config.Config{
		Import: config.ImportConfig{InvertSign: true},
	})
	csvPath := filepath.Join(t.TempDir(), "bank.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Date,Amount,Description\n2025-01-10,45.50,Groceries\n"), 0o644))

	err := runCommand(t, "import", "transactions", csvPath, "--commit", "--config", cfgPath)
	require.NoError(t, err)

	app := openTestApp(t, dataDir)
	require.Len(t, app.Transactions, 1)
	txn := app.Transactions[0]
	assert.Equal(t, model.TypeExpense, txn.Type,
		"invert_sign in the config must flip positive amounts to expenses")
	assert.True(t, txn.Expense.Equal(decimal.RequireFromString("45.50")), "got %s", txn.Expense)
}

func TestImportTransactions_NoInvertByDefault(t *testing.T) {
	cfgPath, dataDir := newTestProject(t, config.Config{})
	csvPath := filepath.Join(t.TempDir(), "bank.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Date,Amount,Description\n2025-01-10,45.50,Groceries\n"), 0o644))

	err := runCommand(t, "import", "transactions", csvPath, "--commit", "--config", cfgPath)
	require.NoError(t, err)

	app := openTestApp(t, dataDir)
	require.Len(t, app.Transactions, 1)
	assert.Equal(t, model.TypeRevenue, app.Transactions[0].Type)
}

func TestRecurringFire_DatesAtMidnightUTC(t *testing.T) {
	cfgPath, dataDir := newTestProject(t, config.Config{SeedOnInit: true})

	setup := state.New(store.NewFileStore(dataDir, logging.Nop()), logging.Nop())
	require.NoError(t, setup.Load(true))
	require.NoError(t, setup.Flush())
	rule, err := setup.AddRule(model.RecurringRule{
		Type:        model.TypeExpense,
		Frequency:   model.FreqMonthly,
		AccountID:   setup.Accounts[0].ID,
		Description: "Rent",
		Amount:      decimal.RequireFromString("800.00"),
	})
	require.NoError(t, err)

	require.NoError(t, runCommand(t, "recurring", "fire", rule.ID, "--config", cfgPath))

	app := openTestApp(t, dataDir)
	require.Len(t, app.Transactions, 1)
	got := app.Transactions[0].Date

	assert.Equal(t, time.UTC, got.Location())
	h, m, s := got.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)
	assert.Zero(t, got.Nanosecond())
}
