// Package export renders entity collections as spreadsheet rows for the
// sheet codec to write.
package export

import (
	"io"
	"strings"

	"github.com/solde-app/solde/internal/importer"
	"github.com/solde-app/solde/internal/model"
)

const dateFormat = "2006-01-02"

// TransactionHeaders are every transaction field except the id.
var TransactionHeaders = []string{
	"Date", "Type", "Account", "DestAccount", "Category", "SubCategory",
	"Description", "Revenue", "Expense", "PaymentMethod", "Marker",
}

// TransactionRows strips the id from each transaction and emits the
// remaining fields as columns.
func TransactionRows(txns []model.Transaction) [][]string {
	rows := make([][]string, len(txns))
	for i, t := range txns {
		rows[i] = []string{
			t.Date.Format(dateFormat),
			string(t.Type),
			t.AccountID,
			t.DestAccountID,
			t.CategoryID,
			t.SubCategory,
			t.Description,
			t.Revenue.StringFixed(2),
			t.Expense.StringFixed(2),
			t.PaymentMethod,
			string(t.Marker),
		}
	}
	return rows
}

// ReconciledRows filters to transactions carrying a reconciliation marker
// before the generic strip-and-emit.
func ReconciledRows(txns []model.Transaction) [][]string {
	var marked []model.Transaction
	for _, t := range txns {
		if t.Marker != model.MarkerNone {
			marked = append(marked, t)
		}
	}
	return TransactionRows(marked)
}

// CategoryHeaders are the fixed column names of a category export.
var CategoryHeaders = []string{"Name", "Type", "Icon", "Color (HEX)", "SubCategories"}

// CategoryRows remaps categories to the fixed export columns, joining
// subcategories with ", ".
func CategoryRows(cats []model.Category) [][]string {
	rows := make([][]string, len(cats))
	for i, c := range cats {
		rows[i] = []string{
			c.Name,
			string(c.Type),
			c.Icon,
			c.Color,
			strings.Join(c.SubCategories, ", "),
		}
	}
	return rows
}

// WriteTransactions writes a transaction export through the sheet codec.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	return importer.WriteSheet(w, TransactionHeaders, TransactionRows(txns))
}

// WriteReconciled writes the reconciliation-only export.
func WriteReconciled(w io.Writer, txns []model.Transaction) error {
	return importer.WriteSheet(w, TransactionHeaders, ReconciledRows(txns))
}

// WriteCategories writes a category export.
func WriteCategories(w io.Writer, cats []model.Category) error {
	return importer.WriteSheet(w, CategoryHeaders, CategoryRows(cats))
}
