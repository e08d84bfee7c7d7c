package validation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validator is implemented by records that can report invariant violations.
type Validator interface {
	// Returns a map of field and human readable explanation of what's wrong
	Valid(ctx context.Context) (problems map[string]string)
}

// ValidationError carries every problem found in one record, addressed by a dotted path.
type ValidationError struct {
	Path     string
	Problems map[string]string
}

func NewValidationError(problems map[string]string, path ...string) *ValidationError {
	return &ValidationError{strings.Join(path, "."), problems}
}

// Check runs v.Valid and wraps any problems into a ValidationError.
func Check(ctx context.Context, v Validator, path ...string) error {
	problems := v.Valid(ctx)
	if len(problems) == 0 {
		return nil
	}
	return NewValidationError(problems, path...)
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	fmt.Fprintf(&b, "validation errors found in '%s':\n", e.Path)
	for _, field := range fields {
		fmt.Fprintf(&b, "  %s: %s\n", field, e.Problems[field])
	}
	return b.String()
}

func (e *ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Problems accumulates field problems.
type Problems map[string]string

// Add records a problem for field unless one is already recorded.
func (p Problems) Add(field, problem string) {
	if _, exists := p[field]; !exists {
		p[field] = problem
	}
}

// NonNegative records a problem when value is below zero.
func (p Problems) NonNegative(field string, value int64) {
	if value < 0 {
		p.Add(field, fmt.Sprintf("must not be negative, got %d", value))
	}
}

// Percentage records a problem when value falls outside [0, 100].
func (p Problems) Percentage(field string, value float64) {
	if math.IsNaN(value) || value < 0 || value > 100 {
		p.Add(field, fmt.Sprintf("must be within [0, 100], got %g", value))
	}
}
