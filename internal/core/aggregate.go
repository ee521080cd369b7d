package core

// Pure aggregations over a transaction collection. No side effects and
// no storage access; callers pass "today" in so trailing-window math
// stays deterministic.

// Summary holds the headline totals for a transaction collection.
// Balance can be negative.
type Summary struct {
	Balance Money
	Income  Money
	Expense Money
}

// CategoryAmount is an expense total for a single category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// DayAmount is the expense total for one calendar day of the trailing
// window.
type DayAmount struct {
	Date   Date
	Amount Money
}

// Summarize computes balance = sum(income) - sum(expense) plus the two
// component sums. Cents arithmetic, so representable decimal inputs
// never drift.
func Summarize(txs []Transaction) Summary {
	var income, expense int64
	for _, t := range txs {
		switch t.Type {
		case Income:
			income += t.Amount.Cents
		case Expense:
			expense += t.Amount.Cents
		}
	}
	return Summary{
		Balance: Money{Cents: income - expense},
		Income:  Money{Cents: income},
		Expense: Money{Cents: expense},
	}
}

// BreakdownByCategory groups EXPENSE transactions by category and sums
// amounts per group. Output order is the insertion order of each
// category's first occurrence among the expense transactions; this is
// an observable contract because display truncates to the first few
// groups. Income transactions never appear.
func BreakdownByCategory(txs []Transaction) []CategoryAmount {
	idx := make(map[Category]int)
	out := []CategoryAmount{}
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		i, ok := idx[t.Category]
		if !ok {
			i = len(out)
			idx[t.Category] = i
			out = append(out, CategoryAmount{Category: t.Category})
		}
		out[i].Amount.Cents += t.Amount.Cents
	}
	return out
}

// TrailingWeek builds exactly 7 calendar-day buckets ending at today
// inclusive, oldest first, each starting at zero. EXPENSE transactions
// whose date exactly matches a bucket key add to that bucket; anything
// outside the window is silently excluded.
func TrailingWeek(today Date, txs []Transaction) []DayAmount {
	buckets := make([]DayAmount, 7)
	byKey := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := today.AddDays(i - 6)
		buckets[i] = DayAmount{Date: d}
		byKey[d.ISO()] = i
	}
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		if i, ok := byKey[t.Date.ISO()]; ok {
			buckets[i].Amount.Cents += t.Amount.Cents
		}
	}
	return buckets
}
