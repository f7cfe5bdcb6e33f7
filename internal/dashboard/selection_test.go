package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lolstats/internal/stats"
)

func TestNewSelection(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, NoSelection, s.Expanded)
	assert.Equal(t, TabOverview, s.Tab)
	assert.Equal(t, NoSelection, s.BuildParticipant)
	assert.Zero(t, s.Graph.Len())
	assert.Equal(t, stats.MetricGold, s.Metric)
}

func TestSelection_ToggleMatch(t *testing.T) {
	s := NewSelection().ToggleMatch(2)
	assert.Equal(t, 2, s.Expanded)

	s = s.SetTab(TabBuild, 4).ToggleMatch(3)
	assert.Equal(t, 3, s.Expanded, "expanding another match collapses the first")
	assert.Equal(t, TabOverview, s.Tab)
	assert.Equal(t, NoSelection, s.BuildParticipant)

	s = s.ToggleMatch(3)
	assert.Equal(t, NoSelection, s.Expanded)
}

func TestSelection_ValueSemantics(t *testing.T) {
	orig := NewSelection()
	_ = orig.ToggleMatch(1).ToggleGraphParticipant(3)
	assert.Equal(t, NewSelection(), orig)
}

func TestSelection_SetTab(t *testing.T) {
	s := NewSelection().ToggleMatch(0)

	s = s.SetTab(TabBuild, 6)
	assert.Equal(t, TabBuild, s.Tab)
	assert.Equal(t, 6, s.BuildParticipant, "build tab selects the searched player")

	s = s.SelectBuildParticipant(2).SetTab(TabOverview, 6).SetTab(TabBuild, 6)
	assert.Equal(t, 2, s.BuildParticipant, "an explicit choice survives tab switches")

	s = s.ToggleGraphParticipant(1).SetTab(TabGraph, 6)
	assert.Zero(t, s.Graph.Len(), "switching tabs clears the graph set")

	assert.Equal(t, 0, NewSelection().SetTab(TabBuild, NoSelection).BuildParticipant)
}

func TestSelection_GraphAndMetric(t *testing.T) {
	s := NewSelection().ToggleMatch(0).SetTab(TabGraph, 0)
	s = s.ToggleGraphParticipant(0).ToggleGraphParticipant(5).ToggleGraphParticipant(12)
	assert.Equal(t, []int{0, 5}, s.Graph.Indexes())

	s = s.SetMetric(stats.MetricCS)
	assert.Equal(t, stats.MetricCS, s.Metric)
	assert.Equal(t, []int{0, 5}, s.Graph.Indexes(), "metric changes keep the line set")

	s = s.ToggleGraphParticipant(0)
	assert.Equal(t, []int{5}, s.Graph.Indexes())
	assert.True(t, s.Graph.Has(5))
	assert.False(t, s.Graph.Has(0))
}

func TestSelection_SelectBuildParticipantRange(t *testing.T) {
	s := NewSelection().SelectBuildParticipant(10)
	assert.Equal(t, NoSelection, s.BuildParticipant)
	s = s.SelectBuildParticipant(9)
	assert.Equal(t, 9, s.BuildParticipant)
}

func TestParseTab(t *testing.T) {
	for _, tab := range []Tab{TabOverview, TabAnalysis, TabBuild, TabGraph} {
		got, err := ParseTab(tab.String())
		assert.NoError(t, err)
		assert.Equal(t, tab, got)
	}
	_, err := ParseTab("runes")
	assert.Error(t, err)
}
