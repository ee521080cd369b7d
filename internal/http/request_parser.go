// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP
// request data: method guards, form parsing, input sanitization, and
// the creation-boundary parse of the transaction form.
package http

import (
	"net/http"
	"strings"

	"zenwallet/internal/core"
)

// RequireMethod checks if the request method matches the expected
// method(s). Returns an error response builder when it doesn't.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// RequireDeleteOrPOST is a convenience function for DELETE/POST handlers.
func RequireDeleteOrPOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodDelete, http.MethodPost)
}

// ParseFormOrFail parses the request form and returns an error response
// on failure. Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Invalid request format")
	}
	return nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseTransactionForm builds a transaction from the creation form.
// This is the client-side creation boundary: on any failure the second
// return value carries the rejection and no store write may happen.
//
// Defaults mirror the form contract: type EXPENSE, category Food, date
// today. Amount has no default; empty or non-numeric input is rejected.
func parseTransactionForm(r *http.Request, today core.Date) (core.Transaction, *HTMXResponseBuilder) {
	txType := core.TransactionType(strings.ToUpper(sanitizeInput(r.Form.Get("type"))))
	if txType == "" {
		txType = core.Expense
	}
	if !txType.Valid() {
		return core.Transaction{}, UnprocessableEntityError("Invalid transaction type")
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		return core.Transaction{}, UnprocessableEntityError("Invalid amount")
	}

	categoryStr := sanitizeInput(r.Form.Get("category"))
	if categoryStr == "" {
		categoryStr = string(core.CategoryFood)
	}
	category, err := core.ParseCategory(categoryStr)
	if err != nil {
		return core.Transaction{}, UnprocessableEntityError("Unknown category")
	}

	date := today
	if v := sanitizeInput(r.Form.Get("date")); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			return core.Transaction{}, UnprocessableEntityError("Invalid date")
		}
		date = parsed
	}

	return core.Transaction{
		Amount:      core.Money{Cents: cents},
		Type:        txType,
		Category:    category,
		Date:        date,
		Description: sanitizeInput(r.Form.Get("description")),
	}, nil
}
