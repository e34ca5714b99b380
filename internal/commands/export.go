package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/export"
	"github.com/solde-app/solde/internal/state"
)

func newExportCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export collections as spreadsheet files",
	}
	cmd.AddCommand(
		newExportSubCommand(configPath, "transactions", "Export all transactions (without ids)",
			func(app *state.App, w io.Writer) error { return export.WriteTransactions(w, app.Transactions) }),
		newExportSubCommand(configPath, "reconciled", "Export transactions carrying a reconciliation marker",
			func(app *state.App, w io.Writer) error { return export.WriteReconciled(w, app.Transactions) }),
		newExportSubCommand(configPath, "categories", "Export categories",
			func(app *state.App, w io.Writer) error { return export.WriteCategories(w, app.Categories) }),
	)
	return cmd
}

func newExportSubCommand(configPath *string, name, short string, write func(*state.App, io.Writer) error) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			w := io.Writer(os.Stdout)
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return write(app, w)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
