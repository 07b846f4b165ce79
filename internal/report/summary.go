package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary renders the match statistics as a console table.
func WriteSummary(w io.Writer, eventName string, stats Stats) {
	title := "Match Report"
	if eventName != "" {
		title += ": " + eventName
	}
	fmt.Fprintf(w, "\n%s\n", title)

	rows := [][]string{
		{"Event entries", strconv.Itoa(stats.Total)},
		{"Exact matches", strconv.Itoa(stats.Exact)},
		{"Name swaps", strconv.Itoa(stats.NameSwap)},
		{"Fuzzy matches", strconv.Itoa(stats.Fuzzy)},
		{"Day/month transposed", strconv.Itoa(stats.DobMobSwapped)},
		{"No match", strconv.Itoa(stats.None)},
		{"Entries with issues", strconv.Itoa(stats.IssuesTotal)},
		{"  wrong day of birth", strconv.Itoa(stats.DobMismatch)},
		{"  wrong month of birth", strconv.Itoa(stats.MobMismatch)},
		{"  wrong year of birth", strconv.Itoa(stats.YobMismatch)},
		{"  wrong association", strconv.Itoa(stats.AssocMismatch)},
		{"  wrong sex", strconv.Itoa(stats.SexMismatch)},
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Count"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}
