package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reportboard/internal/reporting/domain"
	"reportboard/pkg/labels"
)

// createdAtLayout is fixed width so that text ordering matches time ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepository implements the export repository interface using SQLite
type SQLiteRepository struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// NewSQLiteRepository creates a new SQLite export repository
func NewSQLiteRepository(readDB *sql.DB, writeDB *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		readDB:  readDB,
		writeDB: writeDB,
	}
}

// Migrate creates the export schema if it does not exist yet
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	if _, err := r.writeDB.ExecContext(ctx, DDL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// SaveRun stores the run and all its samples in one transaction
func (r *SQLiteRepository) SaveRun(ctx context.Context, run domain.ExportRun, samples []domain.Sample) (err error) {
	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`insert into export_runs (id, created_at, samples) values (?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(createdAtLayout), len(samples),
	)
	if err != nil {
		return fmt.Errorf("failed to insert export run: %w", err)
	}

	for _, sample := range samples {
		seriesID, err := upsertSeries(ctx, tx, sample.SeriesID())
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`insert into samples (run_id, series_id, name, type, time_range, value) values (?, ?, ?, ?, ?, ?)`,
			run.ID, seriesID, sample.Name, string(sample.Type), sample.Labels["range"], sample.Value,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sample %s: %w", sample.Name, err)
		}
	}

	return tx.Commit()
}

func upsertSeries(ctx context.Context, tx *sql.Tx, canonicalID string) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`insert into series (canonical_id) values (?) on conflict (canonical_id) do nothing`,
		canonicalID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert series %s: %w", canonicalID, err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `select id from series where canonical_id = ?`, canonicalID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to look up series %s: %w", canonicalID, err)
	}
	return id, nil
}

// ListRuns returns every export run, newest first
func (r *SQLiteRepository) ListRuns(ctx context.Context) ([]domain.ExportRun, error) {
	rows, err := r.readDB.QueryContext(ctx, `select id, created_at, samples from export_runs order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.ExportRun
	for rows.Next() {
		var (
			run       domain.ExportRun
			createdAt string
		)
		if err := rows.Scan(&run.ID, &createdAt, &run.Samples); err != nil {
			return nil, err
		}
		run.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// ListSamples queries exported samples with optional filters
func (r *SQLiteRepository) ListSamples(ctx context.Context, filters domain.SampleFilters) ([]domain.Sample, error) {
	limit := int64(100)
	if filters.Limit > 0 {
		limit = int64(filters.Limit)
	}
	offset := int64(filters.Offset)

	var runID sql.NullString
	if filters.RunID != nil {
		runID.String = *filters.RunID
		runID.Valid = true
	}

	var name sql.NullString
	if filters.Name != nil {
		name.String = *filters.Name
		name.Valid = true
	}

	var timeRange sql.NullString
	if filters.Range != nil {
		timeRange.String = string(*filters.Range)
		timeRange.Valid = true
	}

	query := `select s.name, s.type, s.value, se.canonical_id
from samples s
join series se on s.series_id = se.id
where (s.run_id = ?1 or ?1 is null)
  and (s.name = ?2 or ?2 is null)
  and (s.time_range = ?3 or ?3 is null)
order by s.id
limit ?4 offset ?5`

	rows, err := r.readDB.QueryContext(ctx, query, runID, name, timeRange, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.Sample
	for rows.Next() {
		var (
			sampleName string
			sampleType string
			value      float64
			canonical  string
		)
		if err := rows.Scan(&sampleName, &sampleType, &value, &canonical); err != nil {
			return nil, err
		}

		// labels are recovered from the series id, minus the name pair
		set := labels.Parse(canonical)
		delete(set, labels.NameKey)

		samples = append(samples, domain.NewSample(sampleName, domain.MetricType(sampleType), value, set))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
