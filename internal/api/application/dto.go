package application

import (
	"time"

	"reportboard/internal/reporting/domain"
)

// RangeResponse represents a selectable time range in API responses
type RangeResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Months  int    `json:"months"`
	Default bool   `json:"default"`
}

// ChartResponse lists a renderable figure
type ChartResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// ExportRunResponse represents an export run in API responses
type ExportRunResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Samples   int       `json:"samples"`
}

// ExportSampleResponse represents an exported sample in API responses
type ExportSampleResponse struct {
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Value  float64           `json:"value"`
	Labels map[string]string `json:"labels"`
}

// ListSamplesRequest represents query parameters for listing exported samples
type ListSamplesRequest struct {
	RunID  *string `json:"run_id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Range  *string `json:"range,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToRangeResponse converts a domain range to an API response
func ToRangeResponse(r, def domain.TimeRange) RangeResponse {
	return RangeResponse{
		Key:     string(r),
		Label:   r.Label(),
		Months:  r.Months(),
		Default: r == def,
	}
}

// ToExportRunResponse converts a domain export run to an API response
func ToExportRunResponse(run domain.ExportRun) ExportRunResponse {
	return ExportRunResponse{
		ID:        run.ID,
		CreatedAt: run.CreatedAt,
		Samples:   run.Samples,
	}
}

// ToExportSampleResponse converts a domain sample to an API response
func ToExportSampleResponse(s domain.Sample) ExportSampleResponse {
	return ExportSampleResponse{
		Name:   s.Name,
		Type:   string(s.Type),
		Value:  s.Value,
		Labels: s.Labels,
	}
}
