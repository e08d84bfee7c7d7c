package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	configapp "reportboard/internal/config/application"
	reportingapp "reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REPORTBOARD_LOG_OUTPUT", "stderr")
	t.Setenv("REPORTBOARD_DEFAULT_RANGE", "")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"reportboard", "--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	return out.String(), err
}

func TestRanges(t *testing.T) {
	out, err := runApp(t, "ranges")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"1 Month", "3 Months", "6 Months"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestShowIdentity_JSON(t *testing.T) {
	out, err := runApp(t, "show", "identity", "--range", "3 Months", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report reportingapp.IdentityReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if report.Range != domain.ThreeMonths || report.Snapshot.TotalProfiles != 75000 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestShowHygiene_YAML(t *testing.T) {
	out, err := runApp(t, "show", "hygiene", "-r", "6m", "-f", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if decoded["range_label"] != "6 Months" {
		t.Errorf("expected range_label 6 Months, got %v", decoded["range_label"])
	}
}

func TestShowIdentity_Table(t *testing.T) {
	out, err := runApp(t, "show", "identity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "25,000") {
		t.Errorf("expected default one month figures, got %q", out)
	}
}

func TestShow_Errors(t *testing.T) {
	if _, err := runApp(t, "show", "identity", "--range", "2 Months"); !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := runApp(t, "show", "hygiene", "--format", "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestShow_InvalidDefaultRange(t *testing.T) {
	_, err := runApp(t, "--default-range", "fortnight", "show", "identity")

	var cfgErr *configapp.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "default-range" {
		t.Fatalf("expected default-range config error, got %v", err)
	}
}

func TestExport_CommandFlag(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested.db")

	out, err := runApp(t, "export", "--db", dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, dbPath) {
		t.Errorf("expected output to name %s, got %q", dbPath, out)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database at %s: %v", dbPath, err)
	}
}

func TestExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "export.db")

	out, err := runApp(t, "--db", dbPath, "export")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "69 samples written") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := runApp(t, "--db", dbPath, "export"); err != nil {
		t.Fatalf("second export failed: %v", err)
	}
}
