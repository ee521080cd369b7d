package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"zenwallet/internal/core"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "method", r.Method, "url", r.URL.Path)
		resp.Write(w)
		return
	}

	tx, reject := parseTransactionForm(r, core.DateOf(s.now()))
	if reject != nil {
		reject.Write(w)
		return
	}

	added, err := s.app.AddTransaction(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction append error", "error", err,
			"category", string(tx.Category), "amount_cents", tx.Amount.Cents)
		InternalServerError("Could not save transaction").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerTransactionCreated(added.ID).
		TriggerFormReset().
		BodyHTML(`<div class="success">Saved: ` +
			template.HTMLEscapeString(describe(added)) + ` ` +
			template.HTMLEscapeString(core.FormatUSD(added.Amount)) +
			` (` + template.HTMLEscapeString(string(added.Category)) + `)</div>`).
		Write(w)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequireDeleteOrPOST(r); resp != nil {
		resp.Write(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/transactions/")
	if id == "" || strings.Contains(id, "/") {
		BadRequestError("Missing transaction id").Write(w)
		return
	}

	// Unknown ids are a silent no-op by contract, so this cannot 404.
	if err := s.app.DeleteTransaction(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Transaction delete error", "error", err, "id", id)
		InternalServerError("Could not delete transaction").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerTransactionDeleted(id).
		Write(w)
}

func describe(t core.Transaction) string {
	if t.Description != "" {
		return t.Description
	}
	if t.Type == core.Income {
		return "income"
	}
	return "expense"
}
