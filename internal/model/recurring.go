package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency describes how often a recurring rule is expected to fire.
// It is advisory only: there is no scheduler, firing is always manual.
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// RecurringRule is a template for a repeated payment or income. Firing a
// rule creates a Transaction; the rule itself is never mutated by firing.
type RecurringRule struct {
	ID        string     `json:"id"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Type      TransactionType `json:"type"`
	Frequency Frequency       `json:"frequency"`

	AccountID     string `json:"accountId"`
	DestAccountID string `json:"destAccountId,omitempty"`
	GoalID        string `json:"goalId,omitempty"`

	CategoryID  string `json:"categoryId"`
	SubCategory string `json:"subCategory"`
	Description string `json:"description"`

	Amount        decimal.Decimal `json:"amount"` // always positive
	PaymentMethod string          `json:"paymentMethod"`

	// Paused suppresses the rule from remaining-to-pay totals and from
	// the manual fire action.
	Paused bool `json:"paused"`
}
