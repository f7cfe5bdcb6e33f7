package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lolstats/internal/stats"
)

func TestRenderGraph(t *testing.T) {
	series := []Series{
		{Name: "Faker", Color: "#FF6384", Points: []stats.Point{{Minute: 0, Value: 500}, {Minute: 1, Value: 600}, {Minute: 2, Value: 700}}},
		{Name: "Keria", Color: "#36A2EB", Points: []stats.Point{{Minute: 0, Value: 500}, {Minute: 1, Value: 550}}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderGraph(&buf, series, stats.MetricGold, DefaultConfig()))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Faker")
	assert.Contains(t, html, "Keria")
	assert.Contains(t, html, "#FF6384")
}

func TestRenderGraph_NoSeries(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderGraph(&buf, nil, stats.MetricXP, DefaultConfig()), ErrNoSeries)
	assert.Zero(t, buf.Len())
}

func TestMinuteAxis_UsesLongestSeries(t *testing.T) {
	axis := minuteAxis([]Series{
		{Points: []stats.Point{{Minute: 0}}},
		{Points: []stats.Point{{Minute: 0}, {Minute: 1}, {Minute: 2}}},
	})
	assert.Equal(t, []string{"0", "1", "2"}, axis)
}

func TestRenderTeamComparison(t *testing.T) {
	rows := []stats.TeamComparison{
		{Field: stats.FieldGold, Blue: 15000, Red: 25000, BluePct: 37.5, RedPct: 62.5},
		{Field: stats.FieldKills, Blue: 0, Red: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderTeamComparison(&buf, rows, DefaultConfig()))
	assert.Contains(t, buf.String(), "Team comparison")
	assert.Contains(t, buf.String(), BlueColor)

	assert.ErrorIs(t, RenderTeamComparison(&buf, nil, DefaultConfig()), ErrNoSeries)
}
