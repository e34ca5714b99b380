package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/ledger"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/state"
)

func newTxCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	cmd.AddCommand(
		newTxAddCommand(configPath),
		newTxListCommand(configPath),
		newTxDeleteCommand(configPath),
		newTxMarkCommand(configPath),
	)
	return cmd
}

func newTxAddCommand(configPath *string) *cobra.Command {
	var (
		account, dest, category, subCategory string
		txnType, amountStr, dateStr          string
		description, payment, goal           string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
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
			cat, err := findCategory(app, category)
			if err != nil {
				return err
			}
			day, err := parseDay(dateStr)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount: %w", err)
			}

			txn := model.Transaction{
				Date:          day,
				Type:          model.TransactionType(txnType),
				AccountID:     acct.ID,
				CategoryID:    cat.ID,
				SubCategory:   subCategory,
				Description:   description,
				PaymentMethod: payment,
				Marker:        model.MarkerNone,
			}
			if dest != "" {
				destAcct, err := findAccount(app, dest)
				if err != nil {
					return err
				}
				txn.DestAccountID = destAcct.ID
			}
			if txn.Type == model.TypeRevenue {
				txn.Revenue = amount
			} else {
				txn.Expense = amount
			}

			posted, err := app.PostTransaction(txn, goal)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s of %s (%s)\n", posted.Type, amount.StringFixed(2), posted.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "source account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&txnType, "type", string(model.TypeExpense), "REVENUE, EXPENSE, TRANSFER or GOAL_DEPOSIT")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account for TRANSFER/GOAL_DEPOSIT")
	cmd.Flags().StringVar(&category, "category", "", "category name or id")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "free-text subcategory")
	cmd.Flags().StringVar(&dateStr, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method, e.g. \"Card: Visa\"")
	cmd.Flags().StringVar(&goal, "goal", "", "goal id credited by a GOAL_DEPOSIT")

	return cmd
}

func newTxListCommand(configPath *string) *cobra.Command {
	var account, sortKey string
	var descending bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an account's transactions with running balances",
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

			dir := ledger.Ascending
			if descending {
				dir = ledger.Descending
			}
			running := ledger.RunningBalances(acct, app.Transactions, ledger.SortKey(sortKey), dir)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tREVENUE\tEXPENSE\tMARKER\tBALANCE\tID")
			for _, rb := range running {
				t := rb.Txn
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format(dateFormat), t.Description,
					t.Revenue.StringFixed(2), t.Expense.StringFixed(2),
					t.Marker, rb.Balance.StringFixed(2), t.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&sortKey, "sort", string(ledger.SortByDate), "sort key: date, description, category, subcategory, revenue, expense, payment, marker")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")

	return cmd
}

func newTxDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.DeleteTransaction(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}

func newTxMarkCommand(configPath *string) *cobra.Command {
	var marker, account string
	var ids []string
	var summary bool

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Set reconciliation markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			if summary {
				return printMarkSummary(app, account)
			}

			targets := ids
			if account != "" && len(targets) == 0 {
				// Mark every transaction on the account.
				acct, err := findAccount(app, account)
				if err != nil {
					return err
				}
				for _, t := range app.Transactions {
					if t.AccountID == acct.ID || t.DestAccountID == acct.ID {
						targets = append(targets, t.ID)
					}
				}
			}
			if len(targets) == 0 {
				return fmt.Errorf("nothing to mark: pass --id or --account")
			}

			if err := app.BulkSetMarker(targets, model.Marker(marker)); err != nil {
				return err
			}
			fmt.Printf("Marked %d transactions %s\n", len(targets), marker)
			return nil
		},
	}

	cmd.Flags().StringVar(&marker, "marker", string(model.MarkerC), "marker: GREEN_CHECK, G, G2, D, D2, C or NONE")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "transaction ids (repeatable)")
	cmd.Flags().StringVar(&account, "account", "", "mark every transaction on this account")
	cmd.Flags().BoolVar(&summary, "summary", false, "print marker counts and last pointed balance instead")

	return cmd
}

func printMarkSummary(app *state.App, account string) error {
	acct, err := findAccount(app, account)
	if err != nil {
		return err
	}

	running := ledger.RunningBalances(acct, app.Transactions, ledger.SortByDate, ledger.Ascending)
	counts := ledger.MarkerCounts(transactionsOf(running))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range model.Markers() {
		fmt.Fprintf(w, "%s\t%d\n", m, counts[m])
	}
	fmt.Fprintf(w, "last pointed\t%s\n", ledger.LastPointedBalance(acct, running).StringFixed(2))
	return w.Flush()
}

func transactionsOf(running []ledger.RunningBalance) []model.Transaction {
	out := make([]model.Transaction, len(running))
	for i, rb := range running {
		out[i] = rb.Txn
	}
	return out
}
