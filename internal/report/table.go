package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable formats rows as a plain-text table for the terminal.
func RenderTable(rows []Row) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	header := make(table.Row, len(ColumnTitles))
	for i, title := range ColumnTitles {
		header[i] = title
	}
	tbl.AppendHeader(header)

	for _, row := range rows {
		tbl.AppendRow(table.Row{row.Product, row.Year, row.Total, row.Companies, fmt.Sprintf("%d%%", row.TopPercent)})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d groups", len(rows))})

	return tbl.Render()
}
