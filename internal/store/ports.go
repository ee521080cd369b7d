package store

import (
	"context"

	"zenwallet/internal/core"
)

// Store is the port for durable financial state. Implementations own
// the persisted copy exclusively; callers never mutate a loaded state
// in place but write through and reload.
//
// Every mutation is a full read-modify-write of the persisted blob.
// Concurrent writers from independent processes race with
// last-writer-wins semantics; that is the contract, not a bug.
type Store interface {
	// LoadState returns the persisted state, or the empty state when
	// nothing has been persisted yet or the payload is unreadable.
	// Missing or corrupt data is never an error.
	LoadState(ctx context.Context) (core.FinancialState, error)

	// AddTransaction appends t and persists. It does not re-validate
	// beyond what the creation boundary enforced and does not
	// deduplicate by id.
	AddTransaction(ctx context.Context, t core.Transaction) error

	// DeleteTransaction removes the transaction with the given id.
	// Silent no-op when the id is absent.
	DeleteTransaction(ctx context.Context, id string) error

	// SeedBudgets sets the budget collection if the state has none
	// yet. Budgets are defined at seed time only; nothing mutates
	// them afterwards.
	SeedBudgets(ctx context.Context, budgets []core.Budget) error

	Close() error
}
