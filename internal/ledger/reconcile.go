package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// LastPointedBalance scans a running-balance sequence backward for the most
// recent transaction marked C and returns its running total, the "last
// bank-confirmed balance". Without any C marker the account's initial
// balance is returned.
func LastPointedBalance(acct model.Account, running []RunningBalance) decimal.Decimal {
	for i := len(running) - 1; i >= 0; i-- {
		if running[i].Txn.Marker == model.MarkerC {
			return running[i].Balance
		}
	}
	return acct.InitialBalance
}

// ApplyMarker sets the marker on every transaction whose id is in ids,
// in place. Ids matching nothing are ignored, so any filtered set can be
// marked wholesale. Returns how many transactions changed.
func ApplyMarker(txns []model.Transaction, ids []string, marker model.Marker) int {
	want := make(map[string]bool, len(ids))
	for _, txnID := range ids {
		want[txnID] = true
	}
	changed := 0
	for i := range txns {
		if want[txns[i].ID] {
			txns[i].Marker = marker
			changed++
		}
	}
	return changed
}

// MarkerCounts tallies transactions by reconciliation marker.
func MarkerCounts(txns []model.Transaction) map[model.Marker]int {
	counts := make(map[model.Marker]int)
	for _, t := range txns {
		counts[t.Marker]++
	}
	return counts
}
