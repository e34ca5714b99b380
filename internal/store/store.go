package store

// Store persists each entity collection as a whole snapshot under a string
// key. There are no partial or delta writes: Save replaces the snapshot,
// Load reads it back in full.
type Store interface {
	// Load unmarshals the snapshot for key into out. It returns false
	// with a nil error when no usable snapshot exists, so callers can
	// fall back to seed data.
	Load(key string, out any) (bool, error)
	// Save replaces the snapshot for key.
	Save(key string, v any) error
}

// Collection keys, one per entity type.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyCards        = "cards"
	KeyRecurring    = "recurring"
	KeyBudgets      = "budgets"
	KeyGoals        = "goals"
)
