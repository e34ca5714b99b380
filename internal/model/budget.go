package model

import "github.com/shopspring/decimal"

// BudgetPeriod scopes a budget cap to a month or a year.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "MONTHLY"
	PeriodYearly  BudgetPeriod = "YEARLY"
)

// Budget caps spend in one category. Consumption is always computed live
// against current transactions; no "spent" field is persisted.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Cap        decimal.Decimal `json:"cap"`
	Period     BudgetPeriod    `json:"period"`
	// Alerts are ordered fractions of the cap, e.g. [0.5, 0.8, 1.0].
	Alerts []float64 `json:"alerts"`
}
