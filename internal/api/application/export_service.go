package application

import (
	"context"

	"reportboard/internal/reporting/domain"
)

// ExportService handles queries over exported snapshot runs
type ExportService struct {
	repo domain.Repository
}

// NewExportService creates a new export service
func NewExportService(repo domain.Repository) *ExportService {
	return &ExportService{
		repo: repo,
	}
}

// ListRuns returns every export run, newest first
func (s *ExportService) ListRuns(ctx context.Context) ([]ExportRunResponse, error) {
	runs, err := s.repo.ListRuns(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ExportRunResponse, len(runs))
	for i, run := range runs {
		responses[i] = ToExportRunResponse(run)
	}
	return responses, nil
}

// ListSamples returns exported samples matching the filters
func (s *ExportService) ListSamples(ctx context.Context, req ListSamplesRequest) ([]ExportSampleResponse, error) {
	var timeRange *domain.TimeRange
	if req.Range != nil {
		r, err := domain.ParseTimeRange(*req.Range)
		if err != nil {
			return nil, err
		}
		timeRange = &r
	}

	filters := domain.SampleFilters{
		RunID:  req.RunID,
		Name:   req.Name,
		Range:  timeRange,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if filters.Limit <= 0 {
		filters.Limit = 100
	}

	samples, err := s.repo.ListSamples(ctx, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]ExportSampleResponse, len(samples))
	for i, sample := range samples {
		responses[i] = ToExportSampleResponse(sample)
	}

	return responses, nil
}
