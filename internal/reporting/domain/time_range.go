package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TimeRange selects the reporting window of a snapshot.
type TimeRange string

const (
	OneMonth    TimeRange = "1m"
	ThreeMonths TimeRange = "3m"
	SixMonths   TimeRange = "6m"
)

// DefaultTimeRange is preselected when the caller does not choose one.
const DefaultTimeRange = OneMonth

// ErrInvalidRange matches every InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("invalid time range")

// InvalidRangeError reports a selector value outside the closed set of ranges.
type InvalidRangeError struct {
	Value string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range %q: expected one of %s", e.Value, strings.Join(rangeNames(), ", "))
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

var timeRanges = []TimeRange{OneMonth, ThreeMonths, SixMonths}

var timeRangeLabels = map[TimeRange]string{
	OneMonth:    "1 Month",
	ThreeMonths: "3 Months",
	SixMonths:   "6 Months",
}

var timeRangeMonths = map[TimeRange]int{
	OneMonth:    1,
	ThreeMonths: 3,
	SixMonths:   6,
}

// TimeRanges lists every range, shortest window first.
func TimeRanges() []TimeRange {
	out := make([]TimeRange, len(timeRanges))
	copy(out, timeRanges)
	return out
}

// ParseTimeRange accepts either the short key ("3m") or the display label
// ("3 Months"). Matching ignores case and surrounding whitespace.
func ParseTimeRange(s string) (TimeRange, error) {
	needle := strings.TrimSpace(s)
	for _, r := range timeRanges {
		if strings.EqualFold(needle, string(r)) || strings.EqualFold(needle, timeRangeLabels[r]) {
			return r, nil
		}
	}
	return "", &InvalidRangeError{Value: s}
}

// Valid reports whether r is one of the enumerated ranges.
func (r TimeRange) Valid() bool {
	_, ok := timeRangeLabels[r]
	return ok
}

// Label is the human readable selector text, e.g. "6 Months".
func (r TimeRange) Label() string {
	return timeRangeLabels[r]
}

// Months is the window length in months, 0 for an invalid range.
func (r TimeRange) Months() int {
	return timeRangeMonths[r]
}

func (r TimeRange) String() string {
	if l, ok := timeRangeLabels[r]; ok {
		return l
	}
	return string(r)
}

func rangeNames() []string {
	names := make([]string, 0, len(timeRanges))
	for _, r := range timeRanges {
		names = append(names, fmt.Sprintf("%q", timeRangeLabels[r]))
	}
	return names
}
