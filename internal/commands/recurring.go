package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/recurring"
)

func newRecurringCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring payment rules",
	}
	cmd.AddCommand(
		newRecurringListCommand(configPath),
		newRecurringAddCommand(configPath),
		newRecurringFireCommand(configPath),
		newRecurringDueCommand(configPath),
	)
	return cmd
}

func newRecurringListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DESCRIPTION\tAMOUNT\tFREQ\tPAUSED\tID")
			for _, r := range app.Recurring {
				paused := ""
				if r.Paused {
					paused = "paused"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.Description, r.Amount.StringFixed(2), r.Frequency, paused, r.ID)
			}
			return w.Flush()
		},
	}
}

func newRecurringAddCommand(configPath *string) *cobra.Command {
	var (
		account, dest, category, subCategory string
		ruleType, freq, amountStr, startStr  string
		description, payment, goal           string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring rule",
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
			start, err := parseDay(startStr)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount: %w", err)
			}

			rule := model.RecurringRule{
				StartDate:     start,
				Type:          model.TransactionType(ruleType),
				Frequency:     model.Frequency(freq),
				AccountID:     acct.ID,
				GoalID:        goal,
				CategoryID:    cat.ID,
				SubCategory:   subCategory,
				Description:   description,
				Amount:        amount,
				PaymentMethod: payment,
			}
			if dest != "" {
				destAcct, err := findAccount(app, dest)
				if err != nil {
					return err
				}
				rule.DestAccountID = destAcct.ID
			}

			added, err := app.AddRule(rule)
			if err != nil {
				return err
			}
			fmt.Printf("Added rule %q (%s)\n", added.Description, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "source account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, always positive (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&ruleType, "type", string(model.TypeExpense), "transaction type")
	cmd.Flags().StringVar(&freq, "frequency", string(model.FreqMonthly), "DAILY, WEEKLY, MONTHLY or YEARLY (advisory)")
	cmd.Flags().StringVar(&startStr, "start", "", "start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account")
	cmd.Flags().StringVar(&category, "category", "", "category name or id")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "free-text subcategory")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method")
	cmd.Flags().StringVar(&goal, "goal", "", "target goal id")

	return cmd
}

func newRecurringFireCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fire <rule-id>",
		Short: "Create a transaction from a rule, dated today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			today, err := parseDay("")
			if err != nil {
				return err
			}
			txn, err := app.FireRule(args[0], today)
			if err != nil {
				return err
			}
			fmt.Printf("Fired: %s (%s)\n", txn.Description, txn.ID)
			return nil
		},
	}
}

func newRecurringDueCommand(configPath *string) *cobra.Command {
	var account string
	var month, year int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show which rules remain to pay this month",
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
			m, y := monthFlags(month, year)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, due := range recurring.DueList(app.Recurring, app.Transactions, acct.ID, m, y) {
				status := "due"
				if due.Fired {
					status = "paid"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", due.Rule.Description, due.Rule.Amount.StringFixed(2), status)
			}
			remaining := recurring.RemainingToPay(app.Recurring, app.Transactions, acct.ID, m, y)
			fmt.Fprintf(w, "remaining\t%s\t\n", remaining.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	return cmd
}
