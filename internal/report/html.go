package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"matchpoint/internal/match"
)

//go:embed report.html.tmpl
var reportTemplate string

var htmlTmpl = template.Must(template.New("report").Parse(reportTemplate))

type htmlCell struct {
	Value string
	Class string
}

type htmlRow struct {
	Class string
	Cells []htmlCell
}

type htmlPage struct {
	EventName string
	Columns   []string
	Stats     Stats
	Rows      []htmlRow
}

// issueCells maps an issue code to the report column indexes it flags.
// Event columns occupy 0-7, reference columns 8-15.
var issueCells = map[string][]int{
	match.IssueNameSwapped:    {1, 2, 9, 10},
	match.IssueLastnameFuzzy:  {1, 9},
	match.IssueFirstnameFuzzy: {2, 10},
	match.IssueSexMismatch:    {3, 11},
	match.IssueAssocMismatch:  {4, 12},
	match.IssueDobMobSwapped:  {5, 6, 13, 14},
	match.IssueDobMismatch:    {5, 13},
	match.IssueMobMismatch:    {6, 14},
	match.IssueYobMismatch:    {7, 15},
}

func htmlResultRow(r match.Result) htmlRow {
	values := resultRow(r)
	// The tolerant confidence slots in right after the strict one.
	values = append(values[:18], append(
		[]string{fmt.Sprintf("%.4f", r.ConfidenceTolerant)},
		values[18:]...)...)

	flagged := make(map[int]bool)
	for _, issue := range r.Issues {
		for _, idx := range issueCells[issue] {
			flagged[idx] = true
		}
	}

	cells := make([]htmlCell, len(values))
	for i, v := range values {
		cells[i] = htmlCell{Value: v}
		if flagged[i] {
			cells[i].Class = "flagged"
		}
	}
	return htmlRow{
		Class: "match-" + strings.ToLower(string(r.Type)),
		Cells: cells,
	}
}

// WriteHTML writes the match results to path as a standalone HTML page,
// creating parent directories as needed. eventName is used for the title.
func WriteHTML(results []match.Result, path, eventName string) error {
	columns := make([]string, 0, len(Columns)+1)
	columns = append(columns, Columns[:18]...)
	columns = append(columns, "Confidence_Tolerant", Columns[18])

	page := htmlPage{
		EventName: eventName,
		Columns:   columns,
		Stats:     ComputeStats(results),
		Rows:      make([]htmlRow, 0, len(results)),
	}
	for _, r := range results {
		page.Rows = append(page.Rows, htmlResultRow(r))
	}

	var buf strings.Builder
	if err := htmlTmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("write html report: %w", err)
	}
	return nil
}
