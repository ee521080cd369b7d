package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:       "abc123",
		Amount:   Money{Cents: 1299},
		Type:     Expense,
		Category: CategoryFood,
		Date:     NewDate(2025, 3, 14),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Description stays optional.
	good.Description = ""
	if err := good.Validate(); err != nil {
		t.Fatalf("empty description should validate, got %v", err)
	}

	bads := []Transaction{
		{ID: "", Amount: Money{Cents: 1}, Type: Expense, Category: CategoryFood, Date: NewDate(2025, 1, 1)},
		{ID: "x", Amount: Money{Cents: 0}, Type: Expense, Category: CategoryFood, Date: NewDate(2025, 1, 1)},
		{ID: "x", Amount: Money{Cents: -5}, Type: Expense, Category: CategoryFood, Date: NewDate(2025, 1, 1)},
		{ID: "x", Amount: Money{Cents: 1}, Type: "TRANSFER", Category: CategoryFood, Date: NewDate(2025, 1, 1)},
		{ID: "x", Amount: Money{Cents: 1}, Type: Expense, Category: "Groceries", Date: NewDate(2025, 1, 1)},
		{ID: "x", Amount: Money{Cents: 1}, Type: Expense, Category: CategoryFood, Date: Date{Time: time.Time{}}},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Transport ")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if c != CategoryTransport {
		t.Fatalf("got %q", c)
	}
	if _, err := ParseCategory("Groceries"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCategoryColorIsTotal(t *testing.T) {
	for _, c := range Categories() {
		if c.Color() == "" {
			t.Fatalf("category %q has no color", c)
		}
	}
	if Category("Nonsense").Color() != fallbackColor {
		t.Fatalf("unknown category should use fallback color")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 8, 30)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-08-30"` {
		t.Fatalf("unexpected wire form: %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ISO() != d.ISO() {
		t.Fatalf("round trip mismatch: %s != %s", back.ISO(), d.ISO())
	}
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:          "id-1",
		Amount:      Money{Cents: 2050},
		Type:        Income,
		Category:    CategorySalary,
		Date:        NewDate(2025, 8, 1),
		Description: "august salary",
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Transaction
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != tx.ID || back.Amount.Cents != 2050 || back.Type != Income ||
		back.Category != CategorySalary || back.Date.ISO() != "2025-08-01" ||
		back.Description != tx.Description {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestEmptyState(t *testing.T) {
	s := EmptyState()
	if s.Transactions == nil || s.Budgets == nil {
		t.Fatalf("empty state must have non-nil slices")
	}
	if len(s.Transactions) != 0 || len(s.Budgets) != 0 {
		t.Fatalf("empty state must be empty")
	}
}
