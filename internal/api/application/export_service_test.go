package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"reportboard/internal/reporting/domain"
	"reportboard/pkg/labels"
)

// mockRepository is a mock implementation of domain.Repository
type mockRepository struct {
	runs        []domain.ExportRun
	samples     []domain.Sample
	lastFilters domain.SampleFilters
	err         error
}

func (m *mockRepository) SaveRun(ctx context.Context, run domain.ExportRun, samples []domain.Sample) error {
	return m.err
}

func (m *mockRepository) ListRuns(ctx context.Context) ([]domain.ExportRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.runs, nil
}

func (m *mockRepository) ListSamples(ctx context.Context, filters domain.SampleFilters) ([]domain.Sample, error) {
	m.lastFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.samples, nil
}

func TestExportService_ListRuns(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepository{runs: []domain.ExportRun{{ID: "run-1", CreatedAt: created, Samples: 69}}}

	runs, err := NewExportService(repo).ListRuns(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" || runs[0].Samples != 69 || !runs[0].CreatedAt.Equal(created) {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestExportService_ListSamples(t *testing.T) {
	sample := domain.NewSample("hygiene_corrections", domain.MetricCounter, 5000,
		labels.Set{"domain": "hygiene", "range": "1m", "type": "NCOA"})

	tests := []struct {
		name      string
		req       ListSamplesRequest
		wantLimit int
		wantRange *domain.TimeRange
		wantErr   error
	}{
		{name: "default limit", req: ListSamplesRequest{}, wantLimit: 100},
		{name: "explicit limit", req: ListSamplesRequest{Limit: 5}, wantLimit: 5},
		{name: "range label", req: ListSamplesRequest{Range: ptr("3 Months")}, wantLimit: 100, wantRange: ptr(domain.ThreeMonths)},
		{name: "invalid range", req: ListSamplesRequest{Range: ptr("2 Months")}, wantErr: domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{samples: []domain.Sample{sample}}
			got, err := NewExportService(repo).ListSamples(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.lastFilters.Limit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, repo.lastFilters.Limit)
			}
			if tt.wantRange != nil && (repo.lastFilters.Range == nil || *repo.lastFilters.Range != *tt.wantRange) {
				t.Errorf("expected range %s, got %v", *tt.wantRange, repo.lastFilters.Range)
			}
			if len(got) != 1 || got[0].Labels["type"] != "NCOA" || got[0].Type != "counter" {
				t.Errorf("unexpected samples: %+v", got)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
