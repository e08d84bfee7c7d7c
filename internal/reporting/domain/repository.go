package domain

import (
	"context"
	"time"
)

// ExportRun identifies one export of the reference snapshots.
type ExportRun struct {
	ID        string
	CreatedAt time.Time
	Samples   int
}

// SampleFilters contains optional filters for querying exported samples
type SampleFilters struct {
	RunID  *string
	Name   *string
	Range  *TimeRange
	Limit  int
	Offset int
}

// Repository defines the interface for export persistence
type Repository interface {
	SaveRun(ctx context.Context, run ExportRun, samples []Sample) error
	ListRuns(ctx context.Context) ([]ExportRun, error)
	ListSamples(ctx context.Context, filters SampleFilters) ([]Sample, error)
}
