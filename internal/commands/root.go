package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/buildinfo"
	"github.com/solde-app/solde/internal/config"
	"github.com/solde-app/solde/internal/logging"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/state"
	"github.com/solde-app/solde/internal/store"
)

const dateFormat = "2006-01-02"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "solde",
		Short:   "Local personal finance ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "config file path")

	rootCmd.AddCommand(
		newInitCommand(&configPath),
		newAccountsCommand(&configPath),
		newTxCommand(&configPath),
		newRecurringCommand(&configPath),
		newBudgetsCommand(&configPath),
		newGoalsCommand(&configPath),
		newCardsCommand(&configPath),
		newImportCommand(&configPath),
		newExportCommand(&configPath),
		newRestCommand(&configPath),
	)

	return rootCmd
}

// loadConfig reads the config file, falling back to defaults when it is
// absent, matching the store's own fallback behavior.
func loadConfig(configPath string) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// openApp loads config and hydrates the entity collections.
func openApp(configPath string) (*state.App, error) {
	log := logging.New()
	cfg := loadConfig(configPath)

	app := state.New(store.NewFileStore(cfg.DataDir, log), log)
	if err := app.Load(cfg.SeedOnInit); err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	return app, nil
}

// findAccount resolves an account by id or case-insensitive name.
func findAccount(app *state.App, ref string) (model.Account, error) {
	if acct, ok := app.AccountByID(ref); ok {
		return acct, nil
	}
	for _, a := range app.Accounts {
		if strings.EqualFold(a.Name, ref) {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("unknown account %q", ref)
}

// findCategory resolves a category by id or case-insensitive name.
func findCategory(app *state.App, ref string) (model.Category, error) {
	if ref == "" {
		return model.Category{}, nil
	}
	if c, ok := app.CategoryByID(ref); ok {
		return c, nil
	}
	for _, c := range app.Categories {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("unknown category %q", ref)
}

// parseDay reads a YYYY-MM-DD flag, defaulting to today when empty.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// monthFlags resolves optional --month/--year flags to a concrete month,
// defaulting to the current one.
func monthFlags(month, year int) (time.Month, int) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return time.Month(month), year
}
