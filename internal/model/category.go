package model

// CategoryType splits categories between revenue and expense.
type CategoryType string

const (
	CategoryRevenue CategoryType = "REVENUE"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category groups transactions. SubCategories are free-text names kept
// sorted by name; duplicates are tolerated.
type Category struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Color         string       `json:"color"`
	Type          CategoryType `json:"type"`
	SubCategories []string     `json:"subCategories"`
}
