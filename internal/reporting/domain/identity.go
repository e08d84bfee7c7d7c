package domain

import (
	"context"
	"fmt"

	"reportboard/internal/shared/validation"
)

// ChannelRecord is one bar of the channel distribution.
type ChannelRecord struct {
	Category           Channel `json:"category" yaml:"category"`
	TotalIdentifiers   int64   `json:"total_identifiers" yaml:"total_identifiers"`
	UniqueIdentifiers  int64   `json:"unique_identifiers" yaml:"unique_identifiers"`
	UniqueReachPercent float64 `json:"unique_reach_percent" yaml:"unique_reach_percent"`
}

// IdentitySnapshot holds the Identity tab metrics for one time range.
type IdentitySnapshot struct {
	Range                   TimeRange       `json:"range" yaml:"range"`
	TotalProfiles           int64           `json:"total_profiles" yaml:"total_profiles"`
	MatchedCoreID           int64           `json:"matched_core_id" yaml:"matched_core_id"`
	MatchedHouseholdID      int64           `json:"matched_household_id" yaml:"matched_household_id"`
	DuplicateRecordsPercent float64         `json:"duplicate_records_percent" yaml:"duplicate_records_percent"`
	ChannelDistribution     []ChannelRecord `json:"channel_distribution" yaml:"channel_distribution"`
	MatchRatePercent        float64         `json:"match_rate_percent" yaml:"match_rate_percent"`
	ReachRatePercent        float64         `json:"reach_rate_percent" yaml:"reach_rate_percent"`
}

// Clone returns a deep copy that shares no memory with s.
func (s IdentitySnapshot) Clone() IdentitySnapshot {
	out := s
	if s.ChannelDistribution != nil {
		out.ChannelDistribution = make([]ChannelRecord, len(s.ChannelDistribution))
		copy(out.ChannelDistribution, s.ChannelDistribution)
	}
	return out
}

func (s *IdentitySnapshot) Valid(ctx context.Context) map[string]string {
	problems := validation.Problems{}

	if !s.Range.Valid() {
		problems.Add("range", fmt.Sprintf("unknown time range %q", s.Range))
	}

	problems.NonNegative("total_profiles", s.TotalProfiles)
	problems.NonNegative("matched_core_id", s.MatchedCoreID)
	problems.NonNegative("matched_household_id", s.MatchedHouseholdID)
	if s.MatchedCoreID > s.TotalProfiles {
		problems.Add("matched_core_id", "cannot exceed total_profiles")
	}
	if s.MatchedHouseholdID > s.TotalProfiles {
		problems.Add("matched_household_id", "cannot exceed total_profiles")
	}

	problems.Percentage("duplicate_records_percent", s.DuplicateRecordsPercent)
	problems.Percentage("match_rate_percent", s.MatchRatePercent)
	problems.Percentage("reach_rate_percent", s.ReachRatePercent)

	channels := Channels()
	if len(s.ChannelDistribution) != len(channels) {
		problems.Add("channel_distribution", fmt.Sprintf("expected %d channels, got %d", len(channels), len(s.ChannelDistribution)))
		return problems
	}
	for i, rec := range s.ChannelDistribution {
		field := fmt.Sprintf("channel_distribution[%d]", i)
		if rec.Category != channels[i] {
			problems.Add(field+".category", fmt.Sprintf("expected %s, got %q", channels[i], rec.Category))
		}
		problems.NonNegative(field+".total_identifiers", rec.TotalIdentifiers)
		problems.NonNegative(field+".unique_identifiers", rec.UniqueIdentifiers)
		if rec.UniqueIdentifiers > rec.TotalIdentifiers {
			problems.Add(field+".unique_identifiers", "cannot exceed total_identifiers")
		}
		problems.Percentage(field+".unique_reach_percent", rec.UniqueReachPercent)
	}

	return problems
}
