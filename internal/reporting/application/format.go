package application

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

func formatCount(v int64) string {
	return humanize.Comma(v)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func formatShare(label string, pct float64) string {
	return fmt.Sprintf("%s %.1f%%", label, pct)
}
