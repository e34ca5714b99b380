package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solde-app/solde/internal/importer"
)

func newImportCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions or categories from a spreadsheet file",
	}
	cmd.AddCommand(
		newImportTransactionsCommand(configPath),
		newImportCategoriesCommand(configPath),
	)
	return cmd
}

func newImportTransactionsCommand(configPath *string) *cobra.Command {
	var overrides []string
	var invert, commit bool

	cmd := &cobra.Command{
		Use:   "transactions <file>",
		Short: "Preview or commit a transaction import",
		Long: `Loads the file, auto-guesses the column mapping, applies --map
overrides, and prints the preview. With --commit the previewed rows are
inserted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()

			p := importer.NewPipeline(app.Categories)
			// The config default applies unless the flag forces it on.
			p.InvertSign = loadConfig(*configPath).Import.InvertSign || invert
			if err := p.LoadFile(f); err != nil {
				return err
			}
			if err := applyOverrides(p.SetMapping, overrides); err != nil {
				return err
			}
			if err := p.BuildPreview(); err != nil {
				return err
			}

			for _, c := range p.Candidates() {
				date := c.RawDate
				if c.DateOK {
					date = c.Txn.Date.Format(dateFormat)
				}
				fmt.Printf("%s  %-8s %8s  %s\n",
					date, c.Txn.Type, c.Txn.Amount().StringFixed(2), c.Txn.Description)
			}

			if !commit {
				fmt.Printf("Previewed %d rows (use --commit to insert)\n", len(p.Candidates()))
				return nil
			}
			count, err := p.Finalize(app)
			if err != nil {
				return err
			}
			fmt.Printf("Inserted %d transactions\n", count)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&overrides, "map", nil, "mapping override field=Header (repeatable)")
	cmd.Flags().BoolVar(&invert, "invert", false, "flip the sign of every imported amount")
	cmd.Flags().BoolVar(&commit, "commit", false, "insert the previewed rows")

	return cmd
}

func newImportCategoriesCommand(configPath *string) *cobra.Command {
	var overrides []string
	var commit bool

	cmd := &cobra.Command{
		Use:   "categories <file>",
		Short: "Preview or commit a category import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*configPath)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()

			p := importer.NewCategoryPipeline()
			if err := p.LoadFile(f); err != nil {
				return err
			}
			if err := applyOverrides(p.SetMapping, overrides); err != nil {
				return err
			}
			if err := p.BuildPreview(); err != nil {
				return err
			}

			for _, c := range p.Candidates() {
				fmt.Printf("%-20s %-8s %s\n", c.Name, c.Type, strings.Join(c.SubCategories, ", "))
			}

			if !commit {
				fmt.Printf("Previewed %d categories (use --commit to insert)\n", len(p.Candidates()))
				return nil
			}
			count, err := p.Finalize(app)
			if err != nil {
				return err
			}
			fmt.Printf("Inserted %d categories\n", count)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&overrides, "map", nil, "mapping override field=Header (repeatable)")
	cmd.Flags().BoolVar(&commit, "commit", false, "insert the previewed categories")

	return cmd
}

func applyOverrides(set func(importer.Field, string) error, overrides []string) error {
	for _, o := range overrides {
		field, header, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("invalid --map %q, want field=Header", o)
		}
		if err := set(importer.Field(field), header); err != nil {
			return err
		}
	}
	return nil
}
