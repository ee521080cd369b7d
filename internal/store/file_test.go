package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"zenwallet/internal/core"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data", "state.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return s
}

func tx(id string, cents int64) core.Transaction {
	return core.Transaction{
		ID:          id,
		Amount:      core.Money{Cents: cents},
		Type:        core.Expense,
		Category:    core.CategoryFood,
		Date:        core.NewDate(2025, 8, 30),
		Description: "test",
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := newFileStore(t)
	state, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Transactions) != 0 || len(state.Budgets) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
	if state.Transactions == nil || state.Budgets == nil {
		t.Fatalf("empty state slices must be non-nil")
	}
}

func TestFileStoreAddThenLoad(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	added := tx("t1", 1234)
	added.Type = core.Income
	added.Category = core.CategorySalary
	added.Description = "salary"
	if err := s.AddTransaction(ctx, added); err != nil {
		t.Fatalf("add: %v", err)
	}

	state, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(state.Transactions))
	}
	got := state.Transactions[0]
	if got.ID != "t1" || got.Amount.Cents != 1234 || got.Type != core.Income ||
		got.Category != core.CategorySalary || got.Date.ISO() != "2025-08-30" ||
		got.Description != "salary" {
		t.Fatalf("fields not preserved: %+v", got)
	}
}

func TestFileStoreDelete(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.AddTransaction(ctx, tx(id, 100)); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.DeleteTransaction(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	state, _ := s.LoadState(ctx)
	if len(state.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(state.Transactions))
	}
	for _, txn := range state.Transactions {
		if txn.ID == "b" {
			t.Fatalf("transaction b still present")
		}
	}
	// Order of survivors preserved.
	if state.Transactions[0].ID != "a" || state.Transactions[1].ID != "c" {
		t.Fatalf("insertion order lost: %+v", state.Transactions)
	}
}

func TestFileStoreDeleteUnknownIsNoop(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()
	if err := s.AddTransaction(ctx, tx("a", 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.DeleteTransaction(ctx, "nope"); err != nil {
		t.Fatalf("delete unknown must not error: %v", err)
	}
	state, _ := s.LoadState(ctx)
	if len(state.Transactions) != 1 {
		t.Fatalf("no-op delete changed state: %+v", state.Transactions)
	}
}

func TestFileStoreCorruptBlobDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt: %v", err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	state, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load must not fail on corrupt data: %v", err)
	}
	if len(state.Transactions) != 0 {
		t.Fatalf("expected empty state")
	}
}

func TestFileStoreUnversionedBlobIsCurrentShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	blob := `{"transactions":[{"id":"old","amount_cents":500,"type":"EXPENSE","category":"Food","date":"2025-01-02","description":""}],"budgets":[{"category":"Food","limit_cents":10000}]}`
	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	state, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Transactions) != 1 || state.Transactions[0].ID != "old" {
		t.Fatalf("unversioned blob not accepted: %+v", state)
	}
	if len(state.Budgets) != 1 || state.Budgets[0].Limit.Cents != 10000 {
		t.Fatalf("budgets not round-tripped: %+v", state.Budgets)
	}
}

func TestFileStoreSeedBudgets(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	seed := []core.Budget{{Category: core.CategoryFood, Limit: core.Money{Cents: 50000}}}
	if err := s.SeedBudgets(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Second seed must not overwrite.
	if err := s.SeedBudgets(ctx, []core.Budget{{Category: core.CategoryOther, Limit: core.Money{Cents: 1}}}); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	state, _ := s.LoadState(ctx)
	if len(state.Budgets) != 1 || state.Budgets[0].Category != core.CategoryFood {
		t.Fatalf("seed semantics broken: %+v", state.Budgets)
	}
}
