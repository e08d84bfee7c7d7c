package infrastructure

import (
	"reportboard/internal/reporting/domain"
)

// StaticProvider serves the built-in reference snapshots.
// It holds no mutable state and is safe for concurrent use.
type StaticProvider struct {
	data *referenceSet
}

// NewStaticProvider creates a provider backed by the reference dataset
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{data: &reference}
}

// IdentitySnapshot returns a copy of the Identity snapshot for r.
func (p *StaticProvider) IdentitySnapshot(r domain.TimeRange) (domain.IdentitySnapshot, error) {
	s, ok := p.data.identity[r]
	if !ok {
		return domain.IdentitySnapshot{}, &domain.InvalidRangeError{Value: string(r)}
	}
	return s.Clone(), nil
}

// HygieneSnapshot returns a copy of the Hygiene snapshot for r.
func (p *StaticProvider) HygieneSnapshot(r domain.TimeRange) (domain.HygieneSnapshot, error) {
	s, ok := p.data.hygiene[r]
	if !ok {
		return domain.HygieneSnapshot{}, &domain.InvalidRangeError{Value: string(r)}
	}
	return s.Clone(), nil
}
