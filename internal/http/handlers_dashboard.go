package http

import (
	"net/http"

	"zenwallet/internal/core"
)

// maxBreakdownRows limits the dashboard category list to the biggest
// spending buckets. The full breakdown stays available in history.
const maxBreakdownRows = 4

type dashboardView struct {
	Balance    string
	Income     string
	Expense    string
	Negative   bool
	Categories []categoryRow
	Week       []dayColumn
	HasData    bool
}

type categoryRow struct {
	Name   string
	Color  string
	Amount string
	// Percent of the largest row, for bar scaling.
	Percent int
}

type dayColumn struct {
	Label  string
	ISO    string
	Amount string
	// Percent of the tallest column, for bar scaling.
	Percent int
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	state := s.app.State()
	summary := core.Summarize(state.Transactions)

	view := dashboardView{
		Balance:  core.FormatUSD(summary.Balance),
		Income:   core.FormatUSD(summary.Income),
		Expense:  core.FormatUSD(summary.Expense),
		Negative: summary.Balance.Cents < 0,
		HasData:  len(state.Transactions) > 0,
	}

	breakdown := core.BreakdownByCategory(state.Transactions)
	if len(breakdown) > maxBreakdownRows {
		breakdown = breakdown[:maxBreakdownRows]
	}
	var maxCat int64
	for _, c := range breakdown {
		if c.Amount.Cents > maxCat {
			maxCat = c.Amount.Cents
		}
	}
	for _, c := range breakdown {
		view.Categories = append(view.Categories, categoryRow{
			Name:    string(c.Category),
			Color:   c.Category.Color(),
			Amount:  core.FormatUSD(c.Amount),
			Percent: percentOf(c.Amount.Cents, maxCat),
		})
	}

	week := core.TrailingWeek(core.DateOf(s.now()), state.Transactions)
	var maxDay int64
	for _, d := range week {
		if d.Amount.Cents > maxDay {
			maxDay = d.Amount.Cents
		}
	}
	for _, d := range week {
		view.Week = append(view.Week, dayColumn{
			Label:   d.Date.Format("Mon"),
			ISO:     d.Date.ISO(),
			Amount:  core.FormatUSD(d.Amount),
			Percent: percentOf(d.Amount.Cents, maxDay),
		})
	}

	s.render(w, r, "dashboard.html", view)
}

func percentOf(v, max int64) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	return int(v * 100 / max)
}
