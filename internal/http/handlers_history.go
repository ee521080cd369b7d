package http

import (
	"net/http"

	"zenwallet/internal/core"
)

type historyView struct {
	Transactions []transactionRow
	Count        int
}

type transactionRow struct {
	ID          string
	Date        string
	Description string
	Category    string
	Color       string
	Amount      string
	Income      bool
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	state := s.app.State()
	view := historyView{Count: len(state.Transactions)}

	// Newest first for display; the stored order is append order.
	for i := len(state.Transactions) - 1; i >= 0; i-- {
		t := state.Transactions[i]
		view.Transactions = append(view.Transactions, transactionRow{
			ID:          t.ID,
			Date:        t.Date.ISO(),
			Description: t.Description,
			Category:    string(t.Category),
			Color:       t.Category.Color(),
			Amount:      core.FormatUSD(t.Amount),
			Income:      t.Type == core.Income,
		})
	}

	s.render(w, r, "history.html", view)
}
