// Package chart renders dashboard graphs as standalone HTML pages with
// go-echarts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lolstats/internal/stats"
)

// ErrNoSeries is returned when there is nothing to draw
var ErrNoSeries = errors.New("no data series provided")

// Config holds chart appearance settings
type Config struct {
	Title      string
	Subtitle   string
	Width      string // e.g. "900px"
	Height     string
	Theme      string
	ShowLegend bool
	Smooth     bool
}

// DefaultConfig returns the dashboard's chart settings
func DefaultConfig() Config {
	return Config{
		Width:      "900px",
		Height:     "500px",
		Theme:      "dark",
		ShowLegend: true,
		Smooth:     true,
	}
}

// Series is one participant's line
type Series struct {
	Name   string
	Color  string
	Points []stats.Point
}

func globalOptions(cfg Config) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.Width,
			Height: cfg.Height,
			Theme:  cfg.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(cfg.ShowLegend),
		}),
	}
}

// minuteAxis labels the x axis with the longest series' minutes
func minuteAxis(series []Series) []string {
	longest := 0
	for i, s := range series {
		if len(s.Points) > len(series[longest].Points) {
			longest = i
		}
	}
	labels := make([]string, len(series[longest].Points))
	for i, p := range series[longest].Points {
		labels[i] = strconv.Itoa(p.Minute)
	}
	return labels
}

// RenderGraph writes a line chart of metric over game minutes, one line per
// series in the series' color
func RenderGraph(w io.Writer, series []Series, metric stats.Metric, cfg Config) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	if cfg.Title == "" {
		cfg.Title = metric.Label()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOptions(cfg),
		charts.WithXAxisOpts(opts.XAxis{Name: "Minute"}),
		charts.WithYAxisOpts(opts.YAxis{Name: metric.Label()}),
	)...)
	line.SetXAxis(minuteAxis(series))

	for _, s := range series {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: p.Value}
		}
		line.AddSeries(s.Name, data).
			SetSeriesOptions(
				charts.WithLineChartOpts(opts.LineChart{
					Smooth: opts.Bool(cfg.Smooth),
				}),
				charts.WithLabelOpts(opts.Label{
					Show: opts.Bool(false),
				}),
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: s.Color,
				}),
			)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return nil
}

// Team colors on the comparison chart
const (
	BlueColor = "#5383E8"
	RedColor  = "#E84057"
)

// RenderTeamComparison writes a grouped bar chart of each field's blue and
// red share as percentages
func RenderTeamComparison(w io.Writer, comparisons []stats.TeamComparison, cfg Config) error {
	if len(comparisons) == 0 {
		return ErrNoSeries
	}
	if cfg.Title == "" {
		cfg.Title = "Team comparison"
	}

	labels := make([]string, len(comparisons))
	blue := make([]opts.BarData, len(comparisons))
	red := make([]opts.BarData, len(comparisons))
	for i, c := range comparisons {
		labels[i] = c.Field.String()
		blue[i] = opts.BarData{Value: c.BluePct}
		red[i] = opts.BarData{Value: c.RedPct}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globalOptions(cfg),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Max: 100}),
	)...)
	bar.SetXAxis(labels).
		AddSeries("Blue", blue, charts.WithItemStyleOpts(opts.ItemStyle{Color: BlueColor})).
		AddSeries("Red", red, charts.WithItemStyleOpts(opts.ItemStyle{Color: RedColor})).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render team comparison: %w", err)
	}
	return nil
}
