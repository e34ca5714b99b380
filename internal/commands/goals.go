package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/budget"
	"github.com/solde-app/solde/internal/model"
)

func newGoalsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(
		newGoalsListCommand(configPath),
		newGoalsAddCommand(configPath),
		newGoalsDepositCommand(configPath),
	)
	return cmd
}

func newGoalsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with required monthly saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCURRENT\tTARGET\tPER MONTH\tREACHED\tID")
			for _, g := range app.Goals {
				required := budget.RequiredMonthlySaving(g, time.Now())
				reached := ""
				if g.Reached {
					reached = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					g.Name, g.Current.StringFixed(2), g.Target.StringFixed(2),
					required.StringFixed(2), reached, g.ID)
			}
			return w.Flush()
		},
	}
}

func newGoalsAddCommand(configPath *string) *cobra.Command {
	var name, targetStr, deadlineStr, account string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			target, err := decimal.NewFromString(targetStr)
			if err != nil {
				return fmt.Errorf("parsing target: %w", err)
			}

			goal := model.SavingsGoal{Name: name, Target: target}
			if deadlineStr != "" {
				deadline, err := parseDay(deadlineStr)
				if err != nil {
					return err
				}
				goal.Deadline = &deadline
			}
			if account != "" {
				acct, err := findAccount(app, account)
				if err != nil {
					return err
				}
				goal.AccountID = acct.ID
			}

			added, err := app.AddGoal(goal)
			if err != nil {
				return err
			}
			fmt.Printf("Added goal %q (%s)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&targetStr, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&deadlineStr, "deadline", "", "deadline YYYY-MM-DD")
	cmd.Flags().StringVar(&account, "account", "", "linked account")

	return cmd
}

func newGoalsDepositCommand(configPath *string) *cobra.Command {
	var goalID, account, amountStr, dateStr string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Post a goal deposit (transaction + goal update in one step)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			goal, ok := app.GoalByID(goalID)
			if !ok {
				return fmt.Errorf("unknown goal %q", goalID)
			}
			acct, err := findAccount(app, account)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount: %w", err)
			}
			day, err := parseDay(dateStr)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Date:          day,
				Type:          model.TypeGoalDeposit,
				AccountID:     acct.ID,
				DestAccountID: goal.AccountID,
				Description:   "Deposit to " + goal.Name,
				Expense:       amount,
				Marker:        model.MarkerNone,
			}
			if _, err := app.PostTransaction(txn, goal.ID); err != nil {
				return err
			}

			updated, _ := app.GoalByID(goal.ID)
			fmt.Printf("Deposited %s to %q (now %s/%s)\n",
				amount.StringFixed(2), goal.Name,
				updated.Current.StringFixed(2), updated.Target.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&goalID, "goal", "", "goal id (required)")
	_ = cmd.MarkFlagRequired("goal")
	cmd.Flags().StringVar(&account, "account", "", "source account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amountStr, "amount", "", "deposit amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&dateStr, "date", "", "date YYYY-MM-DD (default today)")

	return cmd
}
