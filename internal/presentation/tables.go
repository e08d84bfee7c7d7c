package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// WriteIdentityReport prints the Identity tab as terminal tables.
func WriteIdentityReport(w io.Writer, report application.IdentityReport) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Identity - "+report.RangeLabel) + "\n")

	cards := newTable("Metric", "Value")
	for _, c := range report.Cards {
		cards.Row(c.Title, c.Value)
	}
	for _, g := range report.Gauges {
		cards.Row(g.Title, g.Text)
	}
	b.WriteString(cards.Render() + "\n")

	channels := newTable("Channel", "Total Identifiers", "Unique Identifiers", "Unique Reach (%)")
	for _, c := range report.Channels {
		channels.Row(
			string(c.Category),
			humanize.Comma(c.TotalIdentifiers),
			humanize.Comma(c.UniqueIdentifiers),
			fmt.Sprintf("%g%%", c.UniqueReachPercent),
		)
	}
	b.WriteString(channels.Render() + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHygieneReport prints the Hygiene tab as terminal tables.
func WriteHygieneReport(w io.Writer, report application.HygieneReport) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hygiene - "+report.RangeLabel) + "\n")

	contact := newTable("Contact Complete", "Records")
	for _, c := range report.ContactComplete {
		contact.Row(c.Label, humanize.Comma(c.Count))
	}
	b.WriteString(contact.Render() + "\n")

	for _, bd := range []application.Breakdown{report.Corrections, report.EmailValidation} {
		b.WriteString(breakdownTable(bd) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func breakdownTable(bd application.Breakdown) string {
	if bd.Skipped {
		return mutedStyle.Render(bd.Title + ": no data")
	}
	t := newTable(bd.Title, "Records", "Share")
	for _, s := range bd.Shares {
		t.Row(s.Label, humanize.Comma(s.Count), fmt.Sprintf("%.1f%%", s.Percent))
	}
	return t.Render()
}

// WriteRanges prints the selectable ranges.
func WriteRanges(w io.Writer, ranges []domain.TimeRange) error {
	t := newTable("Key", "Label", "Months")
	for _, r := range ranges {
		t.Row(string(r), r.Label(), strconv.Itoa(r.Months()))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
