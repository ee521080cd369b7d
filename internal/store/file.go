package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"zenwallet/internal/core"
)

// FileStore persists the state as one JSON file on the local device.
// Mutations are serialized within the process; across processes the
// storage keeps last-writer-wins semantics (no locking).
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) LoadState(ctx context.Context) (core.FinancialState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx), nil
}

// loadLocked reads the blob, degrading to the empty state on missing
// or unparsable data.
func (s *FileStore) loadLocked(ctx context.Context) core.FinancialState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "State file unreadable, using empty state", "path", s.path, "error", err)
		}
		return core.EmptyState()
	}
	state, err := decodeState(data)
	if err != nil {
		slog.WarnContext(ctx, "State file corrupt, using empty state", "path", s.path, "error", err)
		return core.EmptyState()
	}
	return state
}

func (s *FileStore) AddTransaction(ctx context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	state.Transactions = append(state.Transactions, t)
	if err := s.writeLocked(state); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"type", string(t.Type),
		"category", string(t.Category),
		"amount_cents", t.Amount.Cents)
	return nil
}

func (s *FileStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	remaining, found := deleteByID(state.Transactions, id)
	if !found {
		// No-op by contract.
		slog.DebugContext(ctx, "Delete of unknown transaction ignored", "id", id)
		return nil
	}
	state.Transactions = remaining
	if err := s.writeLocked(state); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

func (s *FileStore) SeedBudgets(ctx context.Context, budgets []core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	if len(state.Budgets) > 0 {
		return nil
	}
	state.Budgets = budgets
	return s.writeLocked(state)
}

func (s *FileStore) writeLocked(state core.FinancialState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
