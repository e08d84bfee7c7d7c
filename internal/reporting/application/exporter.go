package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reportboard/internal/reporting/domain"
	"reportboard/internal/shared/logger"
)

// CollectSamples flattens every snapshot of every range.
func CollectSamples(provider domain.Provider) ([]domain.Sample, error) {
	var samples []domain.Sample
	for _, r := range domain.TimeRanges() {
		identity, err := provider.IdentitySnapshot(r)
		if err != nil {
			return nil, fmt.Errorf("identity snapshot %s: %w", r, err)
		}
		samples = append(samples, identity.Samples()...)

		hygiene, err := provider.HygieneSnapshot(r)
		if err != nil {
			return nil, fmt.Errorf("hygiene snapshot %s: %w", r, err)
		}
		samples = append(samples, hygiene.Samples()...)
	}
	return samples, nil
}

// Exporter writes the reference snapshots to a repository as one run
type Exporter struct {
	logger   logger.Logger
	provider domain.Provider
	repo     domain.Repository

	now   func() time.Time
	newID func() string
}

// NewExporter creates a new exporter
func NewExporter(logger logger.Logger, provider domain.Provider, repo domain.Repository) *Exporter {
	return &Exporter{
		logger:   logger,
		provider: provider,
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Export stores every snapshot under a fresh run id
func (e *Exporter) Export(ctx context.Context) (domain.ExportRun, error) {
	samples, err := CollectSamples(e.provider)
	if err != nil {
		return domain.ExportRun{}, err
	}

	run := domain.ExportRun{
		ID:        e.newID(),
		CreatedAt: e.now(),
		Samples:   len(samples),
	}

	e.logger.Debug("Exporting snapshots", "run_id", run.ID, "samples", run.Samples)
	if err := e.repo.SaveRun(ctx, run, samples); err != nil {
		e.logger.Error("Failed to save export run", "run_id", run.ID, "err", err)
		return domain.ExportRun{}, fmt.Errorf("failed to save export run: %w", err)
	}

	e.logger.Info("Export completed", "run_id", run.ID, "samples", run.Samples)
	return run, nil
}
