package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

const (
	SeverityInfo     InsightSeverity = "info"
	SeverityWarning  InsightSeverity = "warning"
	SeverityPositive InsightSeverity = "positive"
)

type (
	TransactionType string

	InsightSeverity string

	// Category is the closed set of spending/earning categories.
	Category string

	// Date is a calendar day with no time component. It marshals as an
	// ISO "2006-01-02" string.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single dated money movement. Immutable once
	// created; ID is an opaque unique string.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      Money           `json:"amount_cents"`
		Type        TransactionType `json:"type"`
		Category    Category        `json:"category"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
	}

	// Budget pairs a category with a spending limit. Stored and
	// round-tripped but not read by any aggregation in this version.
	Budget struct {
		Category Category `json:"category"`
		Limit    Money    `json:"limit_cents"`
	}

	// FinancialState is the aggregate root: transactions in insertion
	// order plus budgets.
	FinancialState struct {
		Transactions []Transaction `json:"transactions"`
		Budgets      []Budget      `json:"budgets"`
	}

	// AIInsight is a short textual observation produced by the insight
	// service. Ephemeral; never persisted.
	AIInsight struct {
		Title    string          `json:"title"`
		Content  string          `json:"content"`
		Severity InsightSeverity `json:"severity"`
	}
)

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryUtilities     Category = "Utilities"
	CategorySalary        Category = "Salary"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyID         = errors.New("empty transaction id")
)

// fallbackColor keeps the color mapping total for strings outside the
// closed enum.
const fallbackColor = "#94a3b8"

var categoryColors = map[Category]string{
	CategoryFood:          "#f87171",
	CategoryTransport:     "#fb923c",
	CategoryHousing:       "#fbbf24",
	CategoryEntertainment: "#4ade80",
	CategoryShopping:      "#22d3ee",
	CategoryUtilities:     "#818cf8",
	CategorySalary:        "#c084fc",
	CategoryInvestment:    "#f472b6",
	CategoryOther:         fallbackColor,
}

// Categories returns the closed enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryEntertainment,
		CategoryShopping,
		CategoryUtilities,
		CategorySalary,
		CategoryInvestment,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display color for the category, falling back to a
// neutral tone for unknown values.
func (c Category) Color() string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return fallbackColor
}

// ParseCategory matches a string against the closed enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses an ISO "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// ISO returns the "2006-01-02" form used as aggregation key and wire value.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISO())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Cents)
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.Cents)
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, t.Category)
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	// Description is optional; empty string is permitted.
	return nil
}

// EmptyState is the well-defined default used whenever nothing has been
// persisted yet or the persisted payload is unreadable.
func EmptyState() FinancialState {
	return FinancialState{Transactions: []Transaction{}, Budgets: []Budget{}}
}

// Clone copies the state so callers can hold a snapshot while the
// controller replaces its cache.
func (s FinancialState) Clone() FinancialState {
	out := FinancialState{
		Transactions: make([]Transaction, len(s.Transactions)),
		Budgets:      make([]Budget, len(s.Budgets)),
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Budgets, s.Budgets)
	return out
}

func (sv InsightSeverity) Valid() bool {
	switch sv {
	case SeverityInfo, SeverityWarning, SeverityPositive:
		return true
	default:
		return false
	}
}
