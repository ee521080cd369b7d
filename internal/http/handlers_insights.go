package http

import (
	"net/http"
)

type insightsView struct {
	Insights []insightCard
}

type insightCard struct {
	Title    string
	Content  string
	Severity string
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	// Fetched fresh on every view activation, never pushed reactively.
	insights := s.app.Insights(r.Context())

	view := insightsView{}
	for _, in := range insights {
		view.Insights = append(view.Insights, insightCard{
			Title:    in.Title,
			Content:  in.Content,
			Severity: string(in.Severity),
		})
	}

	s.render(w, r, "insights.html", view)
}
