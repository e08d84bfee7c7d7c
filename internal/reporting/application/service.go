package application

import (
	"errors"
	"fmt"
	"strings"

	"reportboard/internal/reporting/domain"
	"reportboard/internal/shared/logger"
)

// ErrUnknownBreakdown is returned for a breakdown name other than corrections or email.
var ErrUnknownBreakdown = errors.New("unknown breakdown")

const (
	DomainIdentity = "identity"
	DomainHygiene  = "hygiene"
)

// Recorder observes lookups. Implementations must be safe for concurrent use.
type Recorder interface {
	SnapshotServed(domainName string, r domain.TimeRange)
	SnapshotRejected(domainName string)
	BreakdownSkipped(name BreakdownName)
}

type nopRecorder struct{}

func (nopRecorder) SnapshotServed(string, domain.TimeRange) {}
func (nopRecorder) SnapshotRejected(string)                 {}
func (nopRecorder) BreakdownSkipped(BreakdownName)          {}

// Service turns provider snapshots into dashboard reports and chart descriptions
type Service struct {
	logger   logger.Logger
	provider domain.Provider
	recorder Recorder
}

// NewService creates a new report service. recorder may be nil.
func NewService(logger logger.Logger, provider domain.Provider, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		logger:   logger,
		provider: provider,
		recorder: recorder,
	}
}

// ResolveRange parses a selector value; a blank selector means def.
func ResolveRange(s string, def domain.TimeRange) (domain.TimeRange, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return domain.ParseTimeRange(s)
}

func (s *Service) identity(r domain.TimeRange) (domain.IdentitySnapshot, error) {
	snap, err := s.provider.IdentitySnapshot(r)
	if err != nil {
		s.recorder.SnapshotRejected(DomainIdentity)
		return snap, err
	}
	s.recorder.SnapshotServed(DomainIdentity, r)
	return snap, nil
}

func (s *Service) hygiene(r domain.TimeRange) (domain.HygieneSnapshot, error) {
	snap, err := s.provider.HygieneSnapshot(r)
	if err != nil {
		s.recorder.SnapshotRejected(DomainHygiene)
		return snap, err
	}
	s.recorder.SnapshotServed(DomainHygiene, r)
	return snap, nil
}

// IdentityReport builds the Identity tab for r
func (s *Service) IdentityReport(r domain.TimeRange) (IdentityReport, error) {
	snap, err := s.identity(r)
	if err != nil {
		return IdentityReport{}, err
	}

	report := IdentityReport{
		Range:      r,
		RangeLabel: r.Label(),
		Cards: []Card{
			{Title: "Total Profiles", Value: formatCount(snap.TotalProfiles)},
			{Title: "Matched csCoreID", Value: formatCount(snap.MatchedCoreID)},
			{Title: "Matched csHHId", Value: formatCount(snap.MatchedHouseholdID)},
			{Title: "Duplicate Records (%)", Value: formatPercent(snap.DuplicateRecordsPercent)},
		},
		Channels: snap.Clone().ChannelDistribution,
		Gauges: []Gauge{
			{Title: "Match Rate (%)", Value: snap.MatchRatePercent, Max: 100, Text: formatPercent(snap.MatchRatePercent)},
			{Title: "Reach Rate (%)", Value: snap.ReachRatePercent, Max: 100, Text: formatPercent(snap.ReachRatePercent)},
		},
		Snapshot: snap,
	}

	s.logger.Debug("Built identity report", "range", string(r))
	return report, nil
}

// HygieneReport builds the Hygiene tab for r. Breakdowns that sum to zero are
// marked skipped rather than failing the report.
func (s *Service) HygieneReport(r domain.TimeRange) (HygieneReport, error) {
	snap, err := s.hygiene(r)
	if err != nil {
		return HygieneReport{}, err
	}

	corrections, err := s.breakdown(snap, BreakdownCorrections)
	if err != nil && !errors.Is(err, domain.ErrDivisionByZero) {
		return HygieneReport{}, err
	}
	email, err := s.breakdown(snap, BreakdownEmail)
	if err != nil && !errors.Is(err, domain.ErrDivisionByZero) {
		return HygieneReport{}, err
	}

	report := HygieneReport{
		Range:           r,
		RangeLabel:      r.Label(),
		ContactComplete: snap.ContactCompleteCounts(),
		Corrections:     corrections,
		EmailValidation: email,
		Snapshot:        snap,
	}

	s.logger.Debug("Built hygiene report", "range", string(r),
		"corrections_skipped", corrections.Skipped, "email_skipped", email.Skipped)
	return report, nil
}

// Breakdown derives the shares of one proportional view. It returns
// domain.ErrDivisionByZero when there is nothing to divide.
func (s *Service) Breakdown(r domain.TimeRange, name BreakdownName) (Breakdown, error) {
	if name != BreakdownCorrections && name != BreakdownEmail {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownBreakdown, name)
	}

	snap, err := s.hygiene(r)
	if err != nil {
		return Breakdown{}, err
	}

	b, err := s.breakdown(snap, name)
	if err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

func (s *Service) breakdown(snap domain.HygieneSnapshot, name BreakdownName) (Breakdown, error) {
	b := Breakdown{Name: name}

	var counts []domain.LabeledCount
	switch name {
	case BreakdownCorrections:
		b.Title = "Corrections"
		counts = snap.CorrectionCounts()
	case BreakdownEmail:
		b.Title = "Email Validation"
		counts = snap.EmailCounts()
	}

	shares, err := domain.Percent(counts)
	if errors.Is(err, domain.ErrDivisionByZero) {
		s.logger.Warn("Skipping empty breakdown", "breakdown", string(name), "range", string(snap.Range))
		s.recorder.BreakdownSkipped(name)
		b.Skipped = true
		b.Shares = []domain.Share{}
		return b, err
	}
	if err != nil {
		return b, err
	}

	b.Shares = shares
	return b, nil
}
