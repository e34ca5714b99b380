package state

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/solde-app/solde/internal/id"
	"github.com/solde-app/solde/internal/ledger"
	"github.com/solde-app/solde/internal/model"
	"github.com/solde-app/solde/internal/recurring"
	"github.com/solde-app/solde/internal/store"
)

// App owns the in-memory entity collections. Every mutation replaces the
// affected collection and synchronously flushes its snapshot to the store,
// so the engines always read a state that matches what is persisted.
//
// Engines never touch an App directly: they are pure functions over the
// collection slices, and commands pass them the slices they need.
type App struct {
	store store.Store
	log   zerolog.Logger

	Accounts     []model.Account
	Transactions []model.Transaction
	Categories   []model.Category
	Cards        []model.CreditCard
	Recurring    []model.RecurringRule
	Budgets      []model.Budget
	Goals        []model.SavingsGoal
}

// New creates an App over the given store.
func New(s store.Store, log zerolog.Logger) *App {
	return &App{store: s, log: log}
}

// Load hydrates every collection from the store. Absent or corrupt
// snapshots fall back to defaults: seed accounts and categories when seed
// is true, empty collections otherwise.
func (a *App) Load(seed bool) error {
	loaders := []struct {
		key  string
		out  any
		seed func()
	}{
		{store.KeyAccounts, &a.Accounts, func() {
			if seed {
				a.Accounts = SeedAccounts()
			}
		}},
		{store.KeyTransactions, &a.Transactions, nil},
		{store.KeyCategories, &a.Categories, func() {
			if seed {
				a.Categories = SeedCategories()
			}
		}},
		{store.KeyCards, &a.Cards, nil},
		{store.KeyRecurring, &a.Recurring, nil},
		{store.KeyBudgets, &a.Budgets, nil},
		{store.KeyGoals, &a.Goals, nil},
	}

	for _, l := range loaders {
		found, err := a.store.Load(l.key, l.out)
		if err != nil {
			return fmt.Errorf("loading %s: %w", l.key, err)
		}
		if !found && l.seed != nil {
			l.seed()
		}
	}
	return nil
}

// Flush writes every collection's snapshot, used after seeding a fresh
// project. Normal mutations flush their own collection as they happen.
func (a *App) Flush() error {
	snapshots := []struct {
		key string
		v   any
	}{
		{store.KeyAccounts, a.Accounts},
		{store.KeyTransactions, a.Transactions},
		{store.KeyCategories, a.Categories},
		{store.KeyCards, a.Cards},
		{store.KeyRecurring, a.Recurring},
		{store.KeyBudgets, a.Budgets},
		{store.KeyGoals, a.Goals},
	}
	for _, s := range snapshots {
		if err := a.save(s.key, s.v); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) save(key string, v any) error {
	if err := a.store.Save(key, v); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// AccountByID returns the account with the given id.
func (a *App) AccountByID(accountID string) (model.Account, bool) {
	for _, acct := range a.Accounts {
		if acct.ID == accountID {
			return acct, true
		}
	}
	return model.Account{}, false
}

// CategoryByID returns the category with the given id.
func (a *App) CategoryByID(categoryID string) (model.Category, bool) {
	for _, c := range a.Categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return model.Category{}, false
}

// GoalByID returns the savings goal with the given id.
func (a *App) GoalByID(goalID string) (model.SavingsGoal, bool) {
	for _, g := range a.Goals {
		if g.ID == goalID {
			return g, true
		}
	}
	return model.SavingsGoal{}, false
}

// RuleByID returns the recurring rule with the given id.
func (a *App) RuleByID(ruleID string) (model.RecurringRule, bool) {
	for _, r := range a.Recurring {
		if r.ID == ruleID {
			return r, true
		}
	}
	return model.RecurringRule{}, false
}

// AddAccount inserts an account, assigning it a fresh id.
func (a *App) AddAccount(acct model.Account) (model.Account, error) {
	acct.ID = id.New()
	a.Accounts = append(a.Accounts, acct)
	return acct, a.save(store.KeyAccounts, a.Accounts)
}

// UpdateAccount replaces the account with the same id.
func (a *App) UpdateAccount(acct model.Account) error {
	for i := range a.Accounts {
		if a.Accounts[i].ID == acct.ID {
			a.Accounts[i] = acct
			return a.save(store.KeyAccounts, a.Accounts)
		}
	}
	return fmt.Errorf("unknown account %s", acct.ID)
}

// DeleteAccount removes an account. Transactions referencing it are left
// in place with dangling references; the balance engines simply stop
// matching them to any account.
func (a *App) DeleteAccount(accountID string) error {
	a.Accounts = removeByID(a.Accounts, accountID, func(x model.Account) string { return x.ID })
	return a.save(store.KeyAccounts, a.Accounts)
}

// PostTransaction inserts a transaction, assigning it a fresh id. For
// GOAL_DEPOSIT transactions carrying a goal id, the goal's current amount
// is incremented in the same logical step, and Reached flips when the
// target is met. Both snapshots are flushed before returning.
func (a *App) PostTransaction(txn model.Transaction, goalID string) (model.Transaction, error) {
	txn.ID = id.New()
	a.Transactions = append(a.Transactions, txn)
	if err := a.save(store.KeyTransactions, a.Transactions); err != nil {
		return model.Transaction{}, err
	}

	if txn.Type == model.TypeGoalDeposit && goalID != "" {
		for i := range a.Goals {
			if a.Goals[i].ID != goalID {
				continue
			}
			a.Goals[i].Current = a.Goals[i].Current.Add(txn.Expense)
			if a.Goals[i].Current.GreaterThanOrEqual(a.Goals[i].Target) {
				a.Goals[i].Reached = true
			}
			if err := a.save(store.KeyGoals, a.Goals); err != nil {
				return model.Transaction{}, err
			}
			a.log.Info().Str("goal", a.Goals[i].Name).
				Str("amount", txn.Expense.StringFixed(2)).
				Msg("goal deposit applied")
			break
		}
	}
	return txn, nil
}

// UpdateTransaction replaces the transaction with the same id.
func (a *App) UpdateTransaction(txn model.Transaction) error {
	for i := range a.Transactions {
		if a.Transactions[i].ID == txn.ID {
			a.Transactions[i] = txn
			return a.save(store.KeyTransactions, a.Transactions)
		}
	}
	return fmt.Errorf("unknown transaction %s", txn.ID)
}

// DeleteTransaction removes a transaction by id.
func (a *App) DeleteTransaction(txnID string) error {
	a.Transactions = removeByID(a.Transactions, txnID, func(x model.Transaction) string { return x.ID })
	return a.save(store.KeyTransactions, a.Transactions)
}

// BulkSetMarker sets the same reconciliation marker on every transaction
// whose id is in ids, then flushes once. Ids that match nothing are
// ignored, so "mark all visible" works over any filtered set.
func (a *App) BulkSetMarker(ids []string, marker model.Marker) error {
	ledger.ApplyMarker(a.Transactions, ids, marker)
	return a.save(store.KeyTransactions, a.Transactions)
}

// FireRule materializes a transaction from a recurring rule dated today.
// Paused rules refuse to fire. Firing twice produces two transactions;
// there is deliberately no dedup.
func (a *App) FireRule(ruleID string, today time.Time) (model.Transaction, error) {
	rule, ok := a.RuleByID(ruleID)
	if !ok {
		return model.Transaction{}, fmt.Errorf("unknown recurring rule %s", ruleID)
	}
	if rule.Paused {
		return model.Transaction{}, fmt.Errorf("rule %q is paused", rule.Description)
	}
	txn := recurring.FireNow(rule, today)
	return a.PostTransaction(txn, rule.GoalID)
}

// AddCategory inserts a category, assigning it a fresh id.
func (a *App) AddCategory(c model.Category) (model.Category, error) {
	c.ID = id.New()
	a.Categories = append(a.Categories, c)
	return c, a.save(store.KeyCategories, a.Categories)
}

// UpdateCategory replaces the category with the same id.
func (a *App) UpdateCategory(c model.Category) error {
	for i := range a.Categories {
		if a.Categories[i].ID == c.ID {
			a.Categories[i] = c
			return a.save(store.KeyCategories, a.Categories)
		}
	}
	return fmt.Errorf("unknown category %s", c.ID)
}

// DeleteCategory removes a category by id.
func (a *App) DeleteCategory(categoryID string) error {
	a.Categories = removeByID(a.Categories, categoryID, func(x model.Category) string { return x.ID })
	return a.save(store.KeyCategories, a.Categories)
}

// AddCard inserts a credit card, assigning it a fresh id.
func (a *App) AddCard(c model.CreditCard) (model.CreditCard, error) {
	c.ID = id.New()
	a.Cards = append(a.Cards, c)
	return c, a.save(store.KeyCards, a.Cards)
}

// DeleteCard removes a credit card by id.
func (a *App) DeleteCard(cardID string) error {
	a.Cards = removeByID(a.Cards, cardID, func(x model.CreditCard) string { return x.ID })
	return a.save(store.KeyCards, a.Cards)
}

// AddRule inserts a recurring rule, assigning it a fresh id.
func (a *App) AddRule(r model.RecurringRule) (model.RecurringRule, error) {
	r.ID = id.New()
	a.Recurring = append(a.Recurring, r)
	return r, a.save(store.KeyRecurring, a.Recurring)
}

// UpdateRule replaces the recurring rule with the same id.
func (a *App) UpdateRule(r model.RecurringRule) error {
	for i := range a.Recurring {
		if a.Recurring[i].ID == r.ID {
			a.Recurring[i] = r
			return a.save(store.KeyRecurring, a.Recurring)
		}
	}
	return fmt.Errorf("unknown recurring rule %s", r.ID)
}

// DeleteRule removes a recurring rule by id.
func (a *App) DeleteRule(ruleID string) error {
	a.Recurring = removeByID(a.Recurring, ruleID, func(x model.RecurringRule) string { return x.ID })
	return a.save(store.KeyRecurring, a.Recurring)
}

// AddBudget inserts a budget, assigning it a fresh id.
func (a *App) AddBudget(b model.Budget) (model.Budget, error) {
	b.ID = id.New()
	a.Budgets = append(a.Budgets, b)
	return b, a.save(store.KeyBudgets, a.Budgets)
}

// DeleteBudget removes a budget by id.
func (a *App) DeleteBudget(budgetID string) error {
	a.Budgets = removeByID(a.Budgets, budgetID, func(x model.Budget) string { return x.ID })
	return a.save(store.KeyBudgets, a.Budgets)
}

// AddGoal inserts a savings goal, assigning it a fresh id.
func (a *App) AddGoal(g model.SavingsGoal) (model.SavingsGoal, error) {
	g.ID = id.New()
	a.Goals = append(a.Goals, g)
	return g, a.save(store.KeyGoals, a.Goals)
}

// UpdateGoal replaces the savings goal with the same id.
func (a *App) UpdateGoal(g model.SavingsGoal) error {
	for i := range a.Goals {
		if a.Goals[i].ID == g.ID {
			a.Goals[i] = g
			return a.save(store.KeyGoals, a.Goals)
		}
	}
	return fmt.Errorf("unknown goal %s", g.ID)
}

// DeleteGoal removes a savings goal by id.
func (a *App) DeleteGoal(goalID string) error {
	a.Goals = removeByID(a.Goals, goalID, func(x model.SavingsGoal) string { return x.ID })
	return a.save(store.KeyGoals, a.Goals)
}

func removeByID[T any](items []T, targetID string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != targetID {
			out = append(out, item)
		}
	}
	return out
}
