package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/analysis"
)

func newRestCommand(configPath *string) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Show the principal account's disposable remaining (reste à vivre)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			m, y := monthFlags(month, year)

			if _, count := analysis.Principal(app.Accounts); count > 1 {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: several accounts marked principal, using the first")
			}
			remaining, ok := analysis.DisposableRemaining(app.Accounts, app.Recurring, app.Transactions, m, y)
			if !ok {
				return fmt.Errorf("no account is marked principal")
			}
			fmt.Println(remaining.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	return cmd
}
