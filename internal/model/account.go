package model

import "github.com/shopspring/decimal"

// Account represents a bank account tracked by the ledger.
//
// Balance is never stored on the account: it is always derived from
// InitialBalance plus the transactions touching it. BankBalance and
// BankCardOutstanding are manually entered reference values used only for
// reconciliation display, never for computed balances.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	// Principal marks the account used for the aggregate
	// disposable-remaining figure. Uniqueness is a data convention,
	// not structurally enforced.
	Principal           bool            `json:"principal"`
	BankBalance         decimal.Decimal `json:"bankBalance"`
	BankCardOutstanding decimal.Decimal `json:"bankCardOutstanding"`
}
