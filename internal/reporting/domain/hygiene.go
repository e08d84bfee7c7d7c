package domain

import (
	"context"
	"fmt"
	"maps"

	"reportboard/internal/shared/validation"
)

// HygieneSnapshot holds the Hygiene tab metrics for one time range.
type HygieneSnapshot struct {
	Range           TimeRange                `json:"range" yaml:"range"`
	ContactComplete map[Channel]int64        `json:"contact_complete" yaml:"contact_complete"`
	Corrections     map[CorrectionType]int64 `json:"corrections" yaml:"corrections"`
	EmailValid      int64                    `json:"email_valid" yaml:"email_valid"`
	EmailInvalid    int64                    `json:"email_invalid" yaml:"email_invalid"`
}

// Clone returns a deep copy that shares no memory with s.
func (s HygieneSnapshot) Clone() HygieneSnapshot {
	out := s
	out.ContactComplete = maps.Clone(s.ContactComplete)
	out.Corrections = maps.Clone(s.Corrections)
	return out
}

// ContactCompleteCounts returns the contact-complete counts in channel order.
func (s HygieneSnapshot) ContactCompleteCounts() []LabeledCount {
	counts := make([]LabeledCount, 0, len(s.ContactComplete))
	for _, c := range Channels() {
		counts = append(counts, LabeledCount{Label: string(c), Count: s.ContactComplete[c]})
	}
	return counts
}

// CorrectionCounts returns the correction counts in correction-type order.
func (s HygieneSnapshot) CorrectionCounts() []LabeledCount {
	counts := make([]LabeledCount, 0, len(s.Corrections))
	for _, t := range CorrectionTypes() {
		counts = append(counts, LabeledCount{Label: string(t), Count: s.Corrections[t]})
	}
	return counts
}

// EmailCounts returns the valid/invalid email split.
func (s HygieneSnapshot) EmailCounts() []LabeledCount {
	return []LabeledCount{
		{Label: "Valid", Count: s.EmailValid},
		{Label: "Invalid", Count: s.EmailInvalid},
	}
}

func (s *HygieneSnapshot) Valid(ctx context.Context) map[string]string {
	problems := validation.Problems{}

	if !s.Range.Valid() {
		problems.Add("range", fmt.Sprintf("unknown time range %q", s.Range))
	}

	for _, c := range Channels() {
		v, ok := s.ContactComplete[c]
		if !ok {
			problems.Add("contact_complete."+string(c), "missing")
			continue
		}
		problems.NonNegative("contact_complete."+string(c), v)
	}
	if len(s.ContactComplete) != len(Channels()) {
		problems.Add("contact_complete", fmt.Sprintf("expected %d channels, got %d", len(Channels()), len(s.ContactComplete)))
	}

	for _, t := range CorrectionTypes() {
		v, ok := s.Corrections[t]
		if !ok {
			problems.Add("corrections."+string(t), "missing")
			continue
		}
		problems.NonNegative("corrections."+string(t), v)
	}
	if len(s.Corrections) != len(CorrectionTypes()) {
		problems.Add("corrections", fmt.Sprintf("expected %d correction types, got %d", len(CorrectionTypes()), len(s.Corrections)))
	}

	problems.NonNegative("email_valid", s.EmailValid)
	problems.NonNegative("email_invalid", s.EmailInvalid)

	return problems
}
