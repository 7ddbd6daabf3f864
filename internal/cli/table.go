package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/LachsProducktions/mediascan/pkg/compare"
	"github.com/LachsProducktions/mediascan/pkg/models"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderItems renders scanned items in the classic five-column view
func renderItems(items []models.ItemRecord) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			item.Path,
			item.SizeDisplay,
			item.DurationDisplay,
			string(item.Category),
		})
	}
	return renderTable(
		[]string{"Name", "Path", "Size", "Duration", "Type"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}

// renderEntries renders a comparison result
func renderEntries(entries []models.CompareEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Key,
			string(entry.Category),
			string(entry.Status),
			entry.LeftDisplay,
			entry.RightDisplay,
		})
	}
	return renderTable(
		[]string{"File", "Category", "Status", "Left", "Right"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}

// statusCounts tallies entries per status for the summary line
func statusCounts(report *compare.Report) map[models.Status]int {
	counts := make(map[models.Status]int)
	for _, entry := range report.Entries {
		counts[entry.Status]++
	}
	return counts
}
