package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/analysis"
	"github.com/solde-app/solde/internal/model"
)

func newCardsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards",
	}
	cmd.AddCommand(
		newCardsListCommand(configPath),
		newCardsAddCommand(configPath),
		newCardsOutstandingCommand(configPath),
	)
	return cmd
}

func newCardsListCommand(configPath *string) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards with the month's outstanding spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			m, y := monthFlags(month, year)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOUTSTANDING\tID")
			for _, c := range app.Cards {
				total := analysis.CardMonthlyTotal(c.Name, app.Transactions, m, y)
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, total.StringFixed(2), c.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	return cmd
}

func newCardsAddCommand(configPath *string) *cobra.Command {
	var name, color, account string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a credit card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			acct, err := findAccount(app, account)
			if err != nil {
				return err
			}
			card, err := app.AddCard(model.CreditCard{Name: name, Color: color, AccountID: acct.ID})
			if err != nil {
				return err
			}
			fmt.Printf("Added card %s (%s)\n", card.Name, card.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "card name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&account, "account", "", "linked account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&color, "color", "", "display color")

	return cmd
}

func newCardsOutstandingCommand(configPath *string) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "outstanding <card-name>",
		Short: "Show a card's outstanding spend for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			m, y := monthFlags(month, year)
			fmt.Println(analysis.CardMonthlyTotal(args[0], app.Transactions, m, y).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	return cmd
}
