package domain

import (
	"reportboard/pkg/labels"
)

// MetricType represents the type of metric
type MetricType string

const (
	MetricGauge   MetricType = "gauge"
	MetricCounter MetricType = "counter"
)

// Sample is one flattened value of a snapshot, addressed by name and labels.
type Sample struct {
	Name   string
	Type   MetricType
	Value  float64
	Labels labels.Set
}

// NewSample creates a new metrics sample
func NewSample(name string, metricType MetricType, value float64, set labels.Set) Sample {
	return Sample{
		Name:   name,
		Type:   metricType,
		Value:  value,
		Labels: set,
	}
}

// SeriesID is the canonical identity of the sample's series.
func (s Sample) SeriesID() string {
	return labels.SeriesID(s.Name, s.Labels)
}

// Samples flattens the snapshot into labelled series.
func (s IdentitySnapshot) Samples() []Sample {
	base := labels.Set{"domain": "identity", "range": string(s.Range)}

	samples := []Sample{
		NewSample("identity_total_profiles", MetricCounter, float64(s.TotalProfiles), base),
		NewSample("identity_matched_core_id", MetricCounter, float64(s.MatchedCoreID), base),
		NewSample("identity_matched_household_id", MetricCounter, float64(s.MatchedHouseholdID), base),
		NewSample("identity_duplicate_records_percent", MetricGauge, s.DuplicateRecordsPercent, base),
		NewSample("identity_match_rate_percent", MetricGauge, s.MatchRatePercent, base),
		NewSample("identity_reach_rate_percent", MetricGauge, s.ReachRatePercent, base),
	}

	for _, rec := range s.ChannelDistribution {
		set := base.With("channel", string(rec.Category))
		samples = append(samples,
			NewSample("identity_channel_total_identifiers", MetricCounter, float64(rec.TotalIdentifiers), set),
			NewSample("identity_channel_unique_identifiers", MetricCounter, float64(rec.UniqueIdentifiers), set),
			NewSample("identity_channel_unique_reach_percent", MetricGauge, rec.UniqueReachPercent, set),
		)
	}

	return samples
}

// Samples flattens the snapshot into labelled series.
func (s HygieneSnapshot) Samples() []Sample {
	base := labels.Set{"domain": "hygiene", "range": string(s.Range)}

	var samples []Sample
	for _, c := range s.ContactCompleteCounts() {
		samples = append(samples, NewSample("hygiene_contact_complete", MetricCounter, float64(c.Count), base.With("channel", c.Label)))
	}
	for _, c := range s.CorrectionCounts() {
		samples = append(samples, NewSample("hygiene_corrections", MetricCounter, float64(c.Count), base.With("type", c.Label)))
	}
	samples = append(samples,
		NewSample("hygiene_email_records", MetricCounter, float64(s.EmailValid), base.With("status", "valid")),
		NewSample("hygiene_email_records", MetricCounter, float64(s.EmailInvalid), base.With("status", "invalid")),
	)

	return samples
}
