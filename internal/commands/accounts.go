package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/ledger"
	"github.com/solde-app/solde/internal/model"
)

func newAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts",
	}
	cmd.AddCommand(
		newAccountsListCommand(configPath),
		newAccountsAddCommand(configPath),
		newAccountsBalanceCommand(configPath),
		newAccountsDeleteCommand(configPath),
	)
	return cmd
}

func newAccountsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts with derived balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBALANCE\tPOINTED\tPRINCIPAL\tID")
			for _, a := range app.Accounts {
				running := ledger.RunningBalances(a, app.Transactions, ledger.SortByDate, ledger.Ascending)
				pointed := ledger.LastPointedBalance(a, running)
				principal := ""
				if a.Principal {
					principal = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.Name,
					ledger.AccountBalance(a, app.Transactions).StringFixed(2),
					pointed.StringFixed(2),
					principal,
					a.ID)
			}
			return w.Flush()
		},
	}
}

func newAccountsAddCommand(configPath *string) *cobra.Command {
	var name string
	var initial string
	var principal bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			bal, err := decimal.NewFromString(initial)
			if err != nil {
				return fmt.Errorf("parsing initial balance: %w", err)
			}

			acct, err := app.AddAccount(model.Account{
				Name:           name,
				InitialBalance: bal,
				Principal:      principal,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added account %s (%s)\n", acct.Name, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&initial, "initial", "0", "initial balance")
	cmd.Flags().BoolVar(&principal, "principal", false, "mark as the principal account")

	return cmd
}

func newAccountsBalanceCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account>",
		Short: "Show an account's derived balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			acct, err := findAccount(app, args[0])
			if err != nil {
				return err
			}
			fmt.Println(ledger.AccountBalance(acct, app.Transactions).StringFixed(2))
			return nil
		},
	}
}

func newAccountsDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account>",
		Short: "Delete an account (its transactions keep dangling references)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			acct, err := findAccount(app, args[0])
			if err != nil {
				return err
			}
			if err := app.DeleteAccount(acct.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted account %s\n", acct.Name)
			return nil
		},
	}
}
