package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/budget"
	"github.com/solde-app/solde/internal/model"
)

func newBudgetsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
	}
	cmd.AddCommand(
		newBudgetsStatusCommand(configPath),
		newBudgetsAddCommand(configPath),
	)
	return cmd
}

func newBudgetsStatusCommand(configPath *string) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show live budget consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			m, y := monthFlags(month, year)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tCAP\tSPENT\tPCT\tREMAINING\tALERTS")
			for _, b := range app.Budgets {
				name := b.CategoryID
				if cat, ok := app.CategoryByID(b.CategoryID); ok {
					name = cat.Name
				}
				st := budget.ComputeStatus(b, app.Transactions, m, y)
				fired := budget.TriggeredAlerts(b, st.Spent)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%s\n",
					name, b.Cap.StringFixed(2), st.Spent.StringFixed(2),
					st.SpentPct, st.Remaining.StringFixed(2), formatAlerts(fired))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	return cmd
}

func newBudgetsAddCommand(configPath *string) *cobra.Command {
	var category, capStr, alertsStr, period string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}
			cat, err := findCategory(app, category)
			if err != nil {
				return err
			}
			capAmt, err := decimal.NewFromString(capStr)
			if err != nil {
				return fmt.Errorf("parsing cap: %w", err)
			}
			alerts, err := parseAlerts(alertsStr)
			if err != nil {
				return err
			}

			b, err := app.AddBudget(model.Budget{
				CategoryID: cat.ID,
				Cap:        capAmt,
				Period:     model.BudgetPeriod(period),
				Alerts:     alerts,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added budget for %s (%s)\n", cat.Name, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category name or id (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&capStr, "cap", "", "cap amount (required)")
	_ = cmd.MarkFlagRequired("cap")
	cmd.Flags().StringVar(&alertsStr, "alerts", "0.5,0.8,1.0", "alert thresholds as fractions of the cap")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "MONTHLY or YEARLY")

	return cmd
}

func parseAlerts(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing alert threshold %q: %w", part, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func formatAlerts(fired []float64) string {
	if len(fired) == 0 {
		return "-"
	}
	parts := make([]string, len(fired))
	for i, f := range fired {
		parts[i] = strconv.FormatFloat(f*100, 'f', -1, 64) + "%"
	}
	return strings.Join(parts, ",")
}
