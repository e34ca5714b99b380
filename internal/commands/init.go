package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/config"
	"github.com/solde-app/solde/internal/logging"
	"github.com/solde-app/solde/internal/state"
	"github.com/solde-app/solde/internal/store"
)

func newInitCommand(configPath *string) *cobra.Command {
	var dataDir string
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new solde project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, dataDir, !noSeed)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "snapshot directory, relative to the project")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with empty accounts and categories")

	return cmd
}

func runInit(dir, dataDir string, seed bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project dir: %w", err)
	}

	cfg := config.Default()
	cfg.DataDir = filepath.Join(dir, dataDir)
	cfg.SeedOnInit = seed
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Hydrate once so the seed snapshots land on disk immediately.
	log := logging.New()
	app := state.New(store.NewFileStore(cfg.DataDir, log), log)
	if err := app.Load(seed); err != nil {
		return fmt.Errorf("seeding state: %w", err)
	}
	if err := app.Flush(); err != nil {
		return fmt.Errorf("writing snapshots: %w", err)
	}

	fmt.Printf("Initialized solde project at %s (%d accounts, %d categories)\n",
		dir, len(app.Accounts), len(app.Categories))
	return nil
}
