package domain

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownChart is returned by ParseChartID for a name outside the dashboard set.
var ErrUnknownChart = errors.New("unknown chart")

// ChartKind tells a renderer which figure to draw.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartPie   ChartKind = "pie"
	ChartDonut ChartKind = "donut"
	ChartGauge ChartKind = "gauge"
)

// ChartID names one of the dashboard figures.
type ChartID string

const (
	ChartChannelIdentifiers ChartID = "identity-channel-identifiers"
	ChartChannelReach       ChartID = "identity-channel-reach"
	ChartMatchRate          ChartID = "identity-match-rate"
	ChartReachRate          ChartID = "identity-reach-rate"
	ChartContactComplete    ChartID = "hygiene-contact-complete"
	ChartCorrections        ChartID = "hygiene-corrections"
	ChartEmailValidation    ChartID = "hygiene-email-validation"
)

var chartIDs = []ChartID{
	ChartChannelIdentifiers,
	ChartChannelReach,
	ChartMatchRate,
	ChartReachRate,
	ChartContactComplete,
	ChartCorrections,
	ChartEmailValidation,
}

// ChartIDs lists every figure in dashboard order.
func ChartIDs() []ChartID {
	out := make([]ChartID, len(chartIDs))
	copy(out, chartIDs)
	return out
}

// ParseChartID validates a figure name.
func ParseChartID(s string) (ChartID, error) {
	for _, id := range chartIDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownChart, s)
}

// ChartPoint is one bar, slice or gauge needle.
type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	// Text is the annotation drawn next to the point ("25,000", "NCOA 62.5%").
	Text string `json:"text" yaml:"text"`
}

// Chart is a presentation-neutral description of a dashboard figure.
type Chart struct {
	ID     ChartID      `json:"id" yaml:"id"`
	Kind   ChartKind    `json:"kind" yaml:"kind"`
	Title  string       `json:"title" yaml:"title"`
	Range  TimeRange    `json:"range" yaml:"range"`
	Points []ChartPoint `json:"points" yaml:"points"`
	// Max is the upper bound of a gauge axis; zero for other kinds.
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`
	// Hole is the donut hole ratio in (0, 1); zero for other kinds.
	Hole float64 `json:"hole,omitempty" yaml:"hole,omitempty"`
}

// ChartRenderer is implemented by the presentation layer.
type ChartRenderer interface {
	Render(w io.Writer, chart Chart) error
	ContentType() string
}
