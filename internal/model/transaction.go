package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction.
type TransactionType string

const (
	TypeRevenue     TransactionType = "REVENUE"
	TypeExpense     TransactionType = "EXPENSE"
	TypeTransfer    TransactionType = "TRANSFER"
	TypeGoalDeposit TransactionType = "GOAL_DEPOSIT"
)

// cardMethodPrefix is the payment-method convention that attributes spend to
// a credit card, e.g. "Card: Visa".
const cardMethodPrefix = "Card: "

// Transaction is a single-entry ledger record. Exactly one of Revenue and
// Expense is nonzero: Revenue for TypeRevenue, Expense for every other type.
type Transaction struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"` // calendar day, no time component

	Type TransactionType `json:"type"`

	// AccountID is the source account. DestAccountID is set only for
	// TRANSFER and GOAL_DEPOSIT.
	AccountID     string `json:"accountId"`
	DestAccountID string `json:"destAccountId,omitempty"`

	CategoryID  string `json:"categoryId"`
	SubCategory string `json:"subCategory"`
	Description string `json:"description"`

	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`

	PaymentMethod string `json:"paymentMethod"`
	Marker        Marker `json:"marker"`
}

// EffectOn returns the transaction's effect on the given account: revenue
// minus expense on the source side, plus expense on the destination side,
// zero otherwise.
func (t Transaction) EffectOn(accountID string) decimal.Decimal {
	if t.AccountID == accountID {
		return t.Revenue.Sub(t.Expense)
	}
	if t.DestAccountID == accountID {
		return t.Expense
	}
	return decimal.Zero
}

// Amount returns the nonzero side of the transaction.
func (t Transaction) Amount() decimal.Decimal {
	if t.Type == TypeRevenue {
		return t.Revenue
	}
	return t.Expense
}

// InMonth reports whether the transaction is dated within month/year.
func (t Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}

// CardPaymentMethod returns the payment-method string attributing spend to
// the named card.
func CardPaymentMethod(cardName string) string {
	return cardMethodPrefix + cardName
}

// CardName extracts the card name from a payment method, or "" if the
// method does not follow the card convention.
func CardName(paymentMethod string) string {
	if !strings.HasPrefix(paymentMethod, cardMethodPrefix) {
		return ""
	}
	return paymentMethod[len(cardMethodPrefix):]
}
