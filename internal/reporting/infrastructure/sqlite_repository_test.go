package infrastructure

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"reportboard/internal/infrastructure/database"
	"reportboard/internal/reporting/domain"
	"reportboard/pkg/labels"
)

func setupTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	testDB, err := database.ConnectSQLite(filepath.Join(t.TempDir(), "export.db"))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })

	repo := NewSQLiteRepository(testDB, testDB)
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}
	return repo
}

func TestSQLiteRepository_SaveAndList(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	provider := NewStaticProvider()

	identity, _ := provider.IdentitySnapshot(domain.OneMonth)
	hygiene, _ := provider.HygieneSnapshot(domain.SixMonths)
	samples := append(identity.Samples(), hygiene.Samples()...)

	run := domain.ExportRun{ID: "run-1", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	if err := repo.SaveRun(ctx, run, samples); err != nil {
		t.Fatalf("unexpected error saving run: %v", err)
	}

	runs, err := repo.ListRuns(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" || runs[0].Samples != len(samples) {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if !runs[0].CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", run.CreatedAt, runs[0].CreatedAt)
	}

	all, err := repo.ListSamples(ctx, domain.SampleFilters{Limit: 1000})
	if err != nil {
		t.Fatalf("unexpected error listing samples: %v", err)
	}
	if len(all) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(all))
	}
	for i := range samples {
		if all[i].SeriesID() != samples[i].SeriesID() || all[i].Value != samples[i].Value || all[i].Type != samples[i].Type {
			t.Errorf("sample %d mismatch: %+v != %+v", i, all[i], samples[i])
		}
	}
}

func TestSQLiteRepository_ListSamplesFilters(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	provider := NewStaticProvider()

	for i, r := range domain.TimeRanges() {
		h, _ := provider.HygieneSnapshot(r)
		run := domain.ExportRun{ID: string(r), CreatedAt: time.Now().Add(time.Duration(i) * time.Second)}
		if err := repo.SaveRun(ctx, run, h.Samples()); err != nil {
			t.Fatalf("unexpected error saving run: %v", err)
		}
	}

	runID := string(domain.ThreeMonths)
	name := "hygiene_corrections"
	sixMonths := domain.SixMonths

	tests := []struct {
		name    string
		filters domain.SampleFilters
		want    int
	}{
		{name: "default limit covers everything", filters: domain.SampleFilters{}, want: 24},
		{name: "by run", filters: domain.SampleFilters{RunID: &runID}, want: 8},
		{name: "by name", filters: domain.SampleFilters{Name: &name}, want: 9},
		{name: "by range and name", filters: domain.SampleFilters{Range: &sixMonths, Name: &name}, want: 3},
		{name: "limit", filters: domain.SampleFilters{Limit: 5}, want: 5},
		{name: "offset", filters: domain.SampleFilters{Offset: 20}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListSamples(ctx, tt.filters)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, len(got))
			}
		})
	}

	runs, err := repo.ListRuns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 3 || runs[0].ID != string(domain.SixMonths) {
		t.Errorf("expected newest run first, got %+v", runs)
	}
}

func TestSQLiteRepository_SeriesShared(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	provider := NewStaticProvider()
	h, _ := provider.HygieneSnapshot(domain.OneMonth)

	for _, id := range []string{"a", "b"} {
		if err := repo.SaveRun(ctx, domain.ExportRun{ID: id, CreatedAt: time.Now()}, h.Samples()); err != nil {
			t.Fatalf("unexpected error saving run %s: %v", id, err)
		}
	}

	var series int
	if err := repo.readDB.QueryRowContext(ctx, `select count(*) from series`).Scan(&series); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series != len(h.Samples()) {
		t.Errorf("expected %d series shared across runs, got %d", len(h.Samples()), series)
	}
}

func TestSQLiteRepository_DuplicateRunRollsBack(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	provider := NewStaticProvider()
	h, _ := provider.HygieneSnapshot(domain.OneMonth)

	run := domain.ExportRun{ID: "dup", CreatedAt: time.Now()}
	if err := repo.SaveRun(ctx, run, h.Samples()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveRun(ctx, run, h.Samples()); err == nil {
		t.Fatal("expected error saving a duplicate run id")
	}

	all, err := repo.ListSamples(ctx, domain.SampleFilters{Limit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(h.Samples()) {
		t.Errorf("expected failed run to leave no samples behind, got %d", len(all))
	}
}

func TestSQLiteRepository_LabelsFromSeries(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	hygiene, _ := NewStaticProvider().HygieneSnapshot(domain.ThreeMonths)
	if err := repo.SaveRun(ctx, domain.ExportRun{ID: "run-1", CreatedAt: time.Now()}, hygiene.Samples()); err != nil {
		t.Fatalf("unexpected error saving run: %v", err)
	}

	name := "hygiene_corrections"
	got, err := repo.ListSamples(ctx, domain.SampleFilters{Name: &name, Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error listing samples: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(got))
	}

	if _, ok := got[0].Labels[labels.NameKey]; ok {
		t.Errorf("name pair leaked into labels: %v", got[0].Labels)
	}
	want := map[string]string{"domain": "hygiene", "range": "3m", "type": "NCOA"}
	if len(got[0].Labels) != len(want) {
		t.Errorf("expected labels %v, got %v", want, got[0].Labels)
	}
	for k, v := range want {
		if got[0].Labels[k] != v {
			t.Errorf("label %s: expected %q, got %q", k, v, got[0].Labels[k])
		}
	}
}
