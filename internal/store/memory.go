package store

import (
	"context"
	"sync"

	"zenwallet/internal/core"
)

// MemoryStore keeps the state in process memory. Used by tests and the
// dev backend; same contract as the durable stores.
type MemoryStore struct {
	mu    sync.Mutex
	state core.FinancialState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: core.EmptyState()}
}

func (s *MemoryStore) LoadState(_ context.Context) (core.FinancialState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

func (s *MemoryStore) AddTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions = append(s.state.Transactions, t)
	return nil
}

func (s *MemoryStore) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions, _ = deleteByID(s.state.Transactions, id)
	return nil
}

func (s *MemoryStore) SeedBudgets(_ context.Context, budgets []core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Budgets) == 0 {
		s.state.Budgets = append([]core.Budget(nil), budgets...)
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
