package state

import (
	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/id"
	"github.com/solde-app/solde/internal/model"
)

// SeedAccounts returns the two starter accounts used when no snapshot
// exists yet. The checking account is marked principal.
func SeedAccounts() []model.Account {
	return []model.Account{
		{ID: id.New(), Name: "Checking", InitialBalance: decimal.Zero, Principal: true},
		{ID: id.New(), Name: "Savings", InitialBalance: decimal.Zero},
	}
}

// SeedCategories returns the three starter categories.
func SeedCategories() []model.Category {
	return []model.Category{
		{ID: id.New(), Name: "Salary", Icon: "briefcase", Color: "#2E7D32", Type: model.CategoryRevenue},
		{ID: id.New(), Name: "Groceries", Icon: "cart", Color: "#EF6C00", Type: model.CategoryExpense, SubCategories: []string{"Market", "Supermarket"}},
		{ID: id.New(), Name: "Housing", Icon: "home", Color: "#1565C0", Type: model.CategoryExpense, SubCategories: []string{"Rent", "Utilities"}},
	}
}
