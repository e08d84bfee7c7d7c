package labels

import (
	"testing"
)

func TestSet_Canonical(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want string
	}{
		{
			name: "single label",
			set:  Set{"range": "1m"},
			want: "range=1m",
		},
		{
			name: "sorted keys",
			set:  Set{"range": "3m", "channel": "Email", "domain": "identity"},
			want: "channel=Email|domain=identity|range=3m",
		},
		{
			name: "empty set",
			set:  Set{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Canonical(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSet_With(t *testing.T) {
	base := Set{"range": "1m"}
	extended := base.With("channel", "Phone")

	if _, ok := base["channel"]; ok {
		t.Error("With must not modify the receiver")
	}
	if extended["channel"] != "Phone" || extended["range"] != "1m" {
		t.Errorf("unexpected labels: %v", extended)
	}
}

func TestSeriesID(t *testing.T) {
	got := SeriesID("hygiene_corrections", Set{"type": "NCOA", "range": "6m"})
	want := "__name__=hygiene_corrections|range=6m|type=NCOA"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Set
	}{
		{
			name:  "multiple labels",
			input: "channel=Email|range=3m",
			want:  Set{"channel": "Email", "range": "3m"},
		},
		{
			name:  "value containing equals",
			input: "expr=a=b",
			want:  Set{"expr": "a=b"},
		},
		{
			name:  "malformed pair skipped",
			input: "range=1m|garbage|=x",
			want:  Set{"range": "1m"},
		},
		{
			name:  "empty string",
			input: "",
			want:  Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d labels, got %d (%v)", len(tt.want), len(got), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("expected label %q=%q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	set := Set{"domain": "hygiene", "status": "valid", "range": "1m"}
	parsed := Parse(set.Canonical())
	if parsed.Canonical() != set.Canonical() {
		t.Errorf("round-trip failed: %q != %q", parsed.Canonical(), set.Canonical())
	}
}
