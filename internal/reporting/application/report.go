package application

import (
	"reportboard/internal/reporting/domain"
)

// Card is one headline figure on the Identity tab.
type Card struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// Gauge is a 0..Max indicator.
type Gauge struct {
	Title string  `json:"title" yaml:"title"`
	Value float64 `json:"value" yaml:"value"`
	Max   float64 `json:"max" yaml:"max"`
	Text  string  `json:"text" yaml:"text"`
}

// BreakdownName selects one of the proportional views of a Hygiene snapshot.
type BreakdownName string

const (
	BreakdownCorrections BreakdownName = "corrections"
	BreakdownEmail       BreakdownName = "email"
)

// Breakdown is a set of counts with their derived shares.
// Skipped is set, and Shares left empty, when the counts sum to zero.
type Breakdown struct {
	Name    BreakdownName  `json:"name" yaml:"name"`
	Title   string         `json:"title" yaml:"title"`
	Shares  []domain.Share `json:"shares" yaml:"shares"`
	Skipped bool           `json:"skipped" yaml:"skipped"`
}

// IdentityReport is everything the Identity tab shows for one range.
type IdentityReport struct {
	Range      domain.TimeRange        `json:"range" yaml:"range"`
	RangeLabel string                  `json:"range_label" yaml:"range_label"`
	Cards      []Card                  `json:"cards" yaml:"cards"`
	Channels   []domain.ChannelRecord  `json:"channels" yaml:"channels"`
	Gauges     []Gauge                 `json:"gauges" yaml:"gauges"`
	Snapshot   domain.IdentitySnapshot `json:"snapshot" yaml:"snapshot"`
}

// HygieneReport is everything the Hygiene tab shows for one range.
type HygieneReport struct {
	Range           domain.TimeRange       `json:"range" yaml:"range"`
	RangeLabel      string                 `json:"range_label" yaml:"range_label"`
	ContactComplete []domain.LabeledCount  `json:"contact_complete" yaml:"contact_complete"`
	Corrections     Breakdown              `json:"corrections" yaml:"corrections"`
	EmailValidation Breakdown              `json:"email_validation" yaml:"email_validation"`
	Snapshot        domain.HygieneSnapshot `json:"snapshot" yaml:"snapshot"`
}
