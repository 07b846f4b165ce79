package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"matchpoint/internal/match"
	"matchpoint/internal/roster"
)

// Columns is the fixed report header shared by the CSV and HTML outputs.
var Columns = []string{
	"Event_ExternID",
	"Event_LastName",
	"Event_FirstName",
	"Event_Sex",
	"Event_Association",
	"Event_DoB",
	"Event_MoB",
	"Event_YoB",
	"Ref_ExternID",
	"Ref_LastName",
	"Ref_FirstName",
	"Ref_Sex",
	"Ref_Association",
	"Ref_DoB",
	"Ref_MoB",
	"Ref_YoB",
	"Match_Type",
	"Confidence",
	"Issues",
}

// utf8BOM keeps German Excel from misreading umlauts in the report.
const utf8BOM = "\xef\xbb\xbf"

func resultRow(r match.Result) []string {
	row := make([]string, 0, len(Columns))
	row = appendPlayerFields(row, &r.Event)
	if r.Ref != nil {
		row = appendPlayerFields(row, r.Ref)
	} else {
		row = append(row, "", "", "", "", "", "", "", "")
	}
	row = append(row,
		string(r.Type),
		fmt.Sprintf("%.4f", r.Confidence),
		strings.Join(r.Issues, ", "),
	)
	return row
}

func appendPlayerFields(row []string, p *roster.Player) []string {
	return append(row,
		p.ExternID,
		p.LastName,
		p.FirstName,
		p.Sex,
		p.Association,
		strconv.Itoa(p.DayOfBirth),
		strconv.Itoa(p.MonthOfBirth),
		strconv.Itoa(p.YearOfBirth),
	)
}

// WriteCSV writes the match results to path as a semicolon-delimited CSV
// with a UTF-8 BOM, creating parent directories as needed.
func WriteCSV(results []match.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(resultRow(r)); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}
