package dashboard

import (
	"fmt"
	"io"

	"lolstats/internal/chart"
	"lolstats/internal/stats"
)

// RenderGraph writes the graph tab of the expanded match as an HTML chart
func (s *Session) RenderGraph(w io.Writer) error {
	lines, err := s.GraphLines()
	if err != nil {
		return err
	}
	metric := s.Selection().Metric

	series := make([]chart.Series, 0, len(lines))
	for _, l := range lines {
		series = append(series, chart.Series{Name: l.Name, Color: l.Color, Points: l.Points})
	}
	cfg := chart.DefaultConfig()
	cfg.Subtitle = s.expandedMatchID()
	return chart.RenderGraph(w, series, metric, cfg)
}

// RenderTeamComparison writes the expanded match's team totals as an HTML
// bar chart
func (s *Session) RenderTeamComparison(w io.Writer) error {
	s.mu.Lock()
	e := s.expandedLocked()
	if e == nil || e.Match == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: no match expanded", ErrNoGraph)
	}
	rows := stats.CompareTeams(e.Match.Info.Participants, overviewFields...)
	matchID := e.MatchID
	s.mu.Unlock()

	cfg := chart.DefaultConfig()
	cfg.Subtitle = matchID
	return chart.RenderTeamComparison(w, rows, cfg)
}

func (s *Session) expandedMatchID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.expandedLocked(); e != nil {
		return e.MatchID
	}
	return ""
}
