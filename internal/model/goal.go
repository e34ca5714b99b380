package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a target amount. Current is mutated
// both by direct edits and, in the same logical step, by posting a
// GOAL_DEPOSIT transaction.
type SavingsGoal struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Target     decimal.Decimal   `json:"target"`
	Current    decimal.Decimal   `json:"current"`
	Deadline   *time.Time        `json:"deadline,omitempty"`
	AccountID  string            `json:"accountId"`
	Reached    bool              `json:"reached"`
	Paused     bool              `json:"paused"`
	Milestones []decimal.Decimal `json:"milestones,omitempty"`
}
