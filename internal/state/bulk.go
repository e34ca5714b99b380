package state

import (
	"sort"
	"strings"

	"github.com/solde-app/solde/internal/id"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/store"
)

// BulkInsertTransactions appends a batch of imported transactions,
// assigning each a fresh id, and flushes once. Returns the inserted count.
func (a *App) BulkInsertTransactions(txns []model.Transaction) (int, error) {
	for i := range txns {
		txns[i].ID = id.New()
	}
	a.Transactions = append(a.Transactions, txns...)
	if err := a.save(store.KeyTransactions, a.Transactions); err != nil {
		return 0, err
	}
	a.log.Info().Int("count", len(txns)).Msg("imported transactions")
	return len(txns), nil
}

// BulkInsertCategories appends a batch of imported categories, assigning
// each a fresh id and keeping subcategories name-sorted, then flushes
// once. Returns the inserted count.
func (a *App) BulkInsertCategories(cats []model.Category) (int, error) {
	for i := range cats {
		cats[i].ID = id.New()
		sort.Slice(cats[i].SubCategories, func(x, y int) bool {
			return strings.ToLower(cats[i].SubCategories[x]) < strings.ToLower(cats[i].SubCategories[y])
		})
	}
	a.Categories = append(a.Categories, cats...)
	if err := a.save(store.KeyCategories, a.Categories); err != nil {
		return 0, err
	}
	a.log.Info().Int("count", len(cats)).Msg("imported categories")
	return len(cats), nil
}
