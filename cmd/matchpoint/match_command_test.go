package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMatchCommandWritesCSVReport(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	refPath := filepath.Join(dir, "ref.csv")
	writeRoster(t, refPath,
		[]string{"R1", "MUELLER", "Hans", "M", "GER", "15", "6", "1985"})

	eventPath := filepath.Join(dir, "tournament_a.csv")
	writeRoster(t, eventPath,
		[]string{"E1", "MUELLER", "Hans", "M", "GER", "16", "6", "1985"},
		[]string{"E2", "NOWHERE", "Nemo", "", "", "", "", ""})

	outputPath := filepath.Join(dir, "out", "report.csv")
	if _, err := runCLI(t, "match", "--ref", refPath, "--event", eventPath, "--output", outputPath); err != nil {
		t.Fatalf("match: %v", err)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	content := string(raw)
	requireContains(t, content, "EXACT")
	requireContains(t, content, "DOB_MISMATCH")
	requireContains(t, content, "0.9000")
	requireContains(t, content, "NO_MATCH")
}

func TestMatchCommandHTMLAndSummary(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	refPath := filepath.Join(dir, "ref.csv")
	writeRoster(t, refPath,
		[]string{"R1", "SIMON", "Csaba", "M", "HUN", "1", "2", "1990"})

	eventPath := filepath.Join(dir, "open.csv")
	writeRoster(t, eventPath,
		[]string{"E1", "Csaba", "SIMON", "M", "HUN", "1", "2", "1990"})

	outputPath := filepath.Join(dir, "report.csv")
	out, err := runCLI(t, "match",
		"--ref", refPath, "--event", eventPath, "--output", outputPath,
		"--html", "--summary")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Name swaps")

	htmlRaw, err := os.ReadFile(filepath.Join(dir, "report.html"))
	if err != nil {
		t.Fatalf("read html report: %v", err)
	}
	requireContains(t, string(htmlRaw), "NAME_SWAP")
}

func TestMatchCommandBatchMode(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	// Reference lives inside the event directory and must be skipped.
	refPath := filepath.Join(dir, "ref.csv")
	writeRoster(t, refPath,
		[]string{"R1", "MUELLER", "Hans", "M", "GER", "15", "6", "1985"})

	for _, name := range []string{"monday.csv", "tuesday.csv"} {
		writeRoster(t, filepath.Join(dir, name),
			[]string{"E1", "MUELLER", "Hans", "M", "GER", "15", "6", "1985"})
	}

	outputDir := filepath.Join(dir, "reports")
	if _, err := runCLI(t, "match", "--ref", refPath, "--event-dir", dir, "--output-dir", outputDir); err != nil {
		t.Fatalf("match batch: %v", err)
	}

	for _, want := range []string{"report_monday.csv", "report_tuesday.csv"} {
		if _, err := os.Stat(filepath.Join(outputDir, want)); err != nil {
			t.Fatalf("expected %s: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outputDir, "report_ref.csv")); err == nil {
		t.Fatal("reference file must not be processed as an event")
	}
}

func TestMatchCommandFlagValidation(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	refPath := filepath.Join(dir, "ref.csv")
	writeRoster(t, refPath,
		[]string{"R1", "MUELLER", "Hans", "M", "GER", "15", "6", "1985"})
	eventPath := filepath.Join(dir, "event.csv")
	writeRoster(t, eventPath,
		[]string{"E1", "MUELLER", "Hans", "M", "GER", "15", "6", "1985"})

	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "neither event nor event-dir",
			args: []string{"match", "--ref", refPath},
			want: "either --event or --event-dir",
		},
		{
			name: "both event and event-dir",
			args: []string{"match", "--ref", refPath, "--event", eventPath, "--event-dir", dir},
			want: "mutually exclusive",
		},
		{
			name: "event without output",
			args: []string{"match", "--ref", refPath, "--event", eventPath},
			want: "--output is required",
		},
		{
			name: "event-dir without output-dir",
			args: []string{"match", "--ref", refPath, "--event-dir", dir},
			want: "--output-dir is required",
		},
		{
			name: "threshold out of range",
			args: []string{"match", "--ref", refPath, "--event", eventPath,
				"--output", filepath.Join(dir, "r.csv"), "--fuzzy-threshold", "1.5"},
			want: "outside [0, 1]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestMatchCommandCustomThreshold(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	refPath := filepath.Join(dir, "ref.csv")
	writeRoster(t, refPath,
		[]string{"R1", "SCHMIDT", "Hans", "M", "GER", "15", "6", "1985"})
	eventPath := filepath.Join(dir, "event.csv")
	writeRoster(t, eventPath,
		[]string{"E1", "SCHMITT", "Hans", "M", "GER", "15", "6", "1985"})

	outputPath := filepath.Join(dir, "report.csv")
	if _, err := runCLI(t, "match", "--ref", refPath, "--event", eventPath,
		"--output", outputPath, "--fuzzy-threshold", "0.99"); err != nil {
		t.Fatalf("match: %v", err)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	requireContains(t, string(raw), "NONE")
}
