package domain

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"reportboard/internal/shared/validation"
)

// ErrDivisionByZero is returned when a breakdown has nothing to divide by.
// Callers should skip rendering the breakdown instead of showing NaN.
var ErrDivisionByZero = errors.New("cannot derive percentages: counts sum to zero")

// LabeledCount is one slice of a breakdown before percentages are derived.
type LabeledCount struct {
	Label string `json:"label" yaml:"label"`
	Count int64  `json:"count" yaml:"count"`
}

// Share is a LabeledCount with its share of the total.
type Share struct {
	Label   string  `json:"label" yaml:"label"`
	Count   int64   `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Percent computes 100*count/sum for every label, preserving input order.
func Percent(counts []LabeledCount) ([]Share, error) {
	problems := validation.Problems{}
	values := make([]float64, len(counts))
	for i, c := range counts {
		problems.NonNegative(c.Label, c.Count)
		values[i] = float64(c.Count)
	}
	if len(problems) > 0 {
		return nil, validation.NewValidationError(problems, "breakdown")
	}

	total := floats.Sum(values)
	if total == 0 {
		return nil, ErrDivisionByZero
	}

	floats.Scale(100/total, values)

	shares := make([]Share, len(counts))
	for i, c := range counts {
		shares[i] = Share{Label: c.Label, Count: c.Count, Percent: values[i]}
	}
	return shares, nil
}
