package presentation

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"reportboard/internal/reporting/domain"
)

// ImageFormat is the output encoding of a rendered chart.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

// ErrUnsupportedFormat is returned by ParseImageFormat.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrEmptyChart is returned when a chart has no points to draw.
var ErrEmptyChart = errors.New("chart has no points")

const (
	chartWidth  = 640
	chartHeight = 400
)

var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
}

var gaugeRemainder = drawing.ColorFromHex("e5e5e5")

// ParseImageFormat maps a query value to a format; empty means PNG.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch s {
	case "", string(FormatPNG):
		return FormatPNG, nil
	case string(FormatSVG):
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ImageRenderer draws chart descriptions with go-chart.
type ImageRenderer struct {
	format ImageFormat
	width  int
	height int
}

// NewImageRenderer creates a renderer for format
func NewImageRenderer(format ImageFormat) *ImageRenderer {
	return &ImageRenderer{format: format, width: chartWidth, height: chartHeight}
}

var _ domain.ChartRenderer = (*ImageRenderer)(nil)

func (r *ImageRenderer) ContentType() string {
	if r.format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (r *ImageRenderer) provider() chart.RendererProvider {
	if r.format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Render writes the encoded figure to w.
func (r *ImageRenderer) Render(w io.Writer, c domain.Chart) error {
	if len(c.Points) == 0 {
		return ErrEmptyChart
	}

	title := fmt.Sprintf("%s - %s", c.Title, c.Range.Label())

	switch c.Kind {
	case domain.ChartBar:
		return r.bar(w, title, c.Points)
	case domain.ChartPie:
		return r.pie(w, title, c.Points)
	case domain.ChartDonut:
		return r.donut(w, title, values(c.Points))
	case domain.ChartGauge:
		return r.gauge(w, title, c)
	}
	return fmt.Errorf("unsupported chart kind %q", c.Kind)
}

func (r *ImageRenderer) bar(w io.Writer, title string, points []domain.ChartPoint) error {
	bars := make([]chart.Value, 0, len(points))
	for i, p := range points {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s)", p.Label, p.Text),
			Value: p.Value,
			Style: fillStyle(palette[i%len(palette)]),
		})
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		Bars:       bars,
	}
	return bc.Render(r.provider(), w)
}

func (r *ImageRenderer) pie(w io.Writer, title string, points []domain.ChartPoint) error {
	pc := chart.PieChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Values: values(points),
	}
	return pc.Render(r.provider(), w)
}

func (r *ImageRenderer) donut(w io.Writer, title string, vals []chart.Value) error {
	dc := chart.DonutChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Values: vals,
	}
	return dc.Render(r.provider(), w)
}

// gauge is drawn as a donut of the value against the rest of the axis.
func (r *ImageRenderer) gauge(w io.Writer, title string, c domain.Chart) error {
	p := c.Points[0]
	vals := []chart.Value{{Label: p.Text, Value: p.Value, Style: fillStyle(palette[0])}}
	if rest := c.Max - p.Value; rest > 0 {
		vals = append(vals, chart.Value{Value: rest, Style: fillStyle(gaugeRemainder)})
	}
	return r.donut(w, title, vals)
}

func values(points []domain.ChartPoint) []chart.Value {
	out := make([]chart.Value, 0, len(points))
	for i, p := range points {
		out = append(out, chart.Value{
			Label: p.Text,
			Value: p.Value,
			Style: fillStyle(palette[i%len(palette)]),
		})
	}
	return out
}

func fillStyle(c drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   c,
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 1,
	}
}
